package mcp

import (
	"context"
	"encoding/json"

	"github.com/breathe-hr/cursorlink/api"
	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

func InitTools() []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(GenerateLink()))
	tools = append(tools, newServerTool(DecodeLink()))

	return tools
}

// LinkInfo is the payload returned by the link tools
type LinkInfo struct {
	Config json.RawMessage `json:"config"`
	Link   string          `json:"link"`
}

func linkInfoResult(result *api.Result) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(LinkInfo{
		Config: json.RawMessage(result.JSON),
		Link:   result.Link,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func GenerateLink() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"generate_cursor_link",
			mcp.WithDescription("Generate the Cursor MCP configuration and cursor:// deep-link for the Breathe HR MCP server"),
			mcp.WithString("name", mcp.Description("Server name in the configuration (default breathe-hr)")),
			mcp.WithString("command", mcp.Description("Executable that launches the server (default python)")),
			mcp.WithArray("args", mcp.Description("Arguments for the command, replacing the defaults")),
			mcp.WithArray("env", mcp.Description("Environment as KEY=VALUE strings, replacing the defaults")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Name    string   `json:"name" validate:"omitempty,max=128"`
				Command string   `json:"command" validate:"omitempty"`
				Args    []string `json:"args" validate:"omitempty"`
				Env     []string `json:"env" validate:"omitempty,dive,required"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			overrides := api.Overrides{
				Name:    args.Name,
				Command: args.Command,
				Args:    args.Args,
			}
			if args.Env != nil {
				overrides.Env = []api.EnvVar{}
				for _, s := range args.Env {
					v, err := api.ParseEnvVar(s)
					if err != nil {
						return mcp.NewToolResultError(err.Error()), nil
					}
					overrides.Env = append(overrides.Env, v)
				}
			}

			result, err := api.Generate(overrides.Apply())
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return linkInfoResult(result)
		}
}

func DecodeLink() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"decode_cursor_link",
			mcp.WithDescription("Decode a cursor://settings/mcp deep-link into its MCP configuration"),
			mcp.WithString("link", mcp.Required(), mcp.Description("The cursor:// link")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Link string `json:"link" validate:"required"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			result, err := api.Decode(args.Link)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return linkInfoResult(result)
		}
}
