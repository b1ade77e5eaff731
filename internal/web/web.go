package web

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/swaggest/jsonrpc"
	"github.com/swaggest/openapi-go"
	"github.com/swaggest/swgui"
	v5 "github.com/swaggest/swgui/v5"
	"github.com/ziflex/lecho/v3"

	"heapvis/global"
	"heapvis/internal/core"
	"heapvis/internal/web/internal/prof"
)

//go:embed description.md
var desc string

type jsonRpcRequest struct {
	ID json.RawMessage `json:"id"`
}

func New(c *core.Core, token string, debug bool) http.Handler {
	apiSchema := jsonrpc.OpenAPI{}
	apiSchema.Reflector().SpecEns().Info.Title = "Heap Visualizer JSON-RPC"
	apiSchema.Reflector().SpecEns().Info.Version = global.Version
	apiSchema.Reflector().SpecEns().Info.WithDescription(desc)
	apiSchema.Reflector().SpecEns().SetAPIKeySecurity("api-key", echo.HeaderAuthorization, openapi.InHeader, "need set api header")

	h := &jsonrpc.Handler{}
	h.OpenAPI = &apiSchema
	h.Validator = &jsonrpc.JSONSchemaValidator{}
	h.SkipResultValidation = true

	server := echo.New()
	server.Logger = lecho.From(log.Logger)

	server.Use(middleware.Recover())
	server.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, global.UserAgent)
			return next(c)
		}
	})

	if debug {
		server.Debug = true
		prof.Wrap(server)
	}

	CreateSession(h, c)
	BuildHeap(h, c)
	InsertValue(h, c)
	DeleteRoot(h, c)
	Snapshot(h, c)
	DropSession(h, c)
	Stat(h, c)

	var auth echo.MiddlewareFunc = func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token != "" && c.Request().Header.Get(echo.HeaderAuthorization) != token {
				var r jsonRpcRequest
				err := json.NewDecoder(c.Request().Body).Decode(&r)
				if err != nil {
					return c.JSON(401,
						jsonrpc.Response{
							JSONRPC: "2.0",
							Error: &jsonrpc.Error{
								Code:    jsonrpc.CodeParseError,
								Message: err.Error(),
							},
						},
					)
				}
				id := interface{}(r.ID)
				return c.JSON(401, jsonrpc.Response{
					JSONRPC: "2.0",
					ID:      &id,
					Error:   &jsonrpc.Error{Code: 401, Message: "invalid token"},
				})
			}

			return next(c)
		}
	}

	server.POST("/json_rpc", echo.WrapHandler(h), auth)

	server.GET("/docs/openapi.json", echo.WrapHandler(h.OpenAPI))
	server.GET("/docs/*", echo.WrapHandler(v5.NewHandlerWithConfig(swgui.Config{
		Title:       apiSchema.Reflector().Spec.Info.Title,
		SwaggerJSON: "/docs/openapi.json",
		BasePath:    "/docs/",
		SettingsUI:  jsonrpc.SwguiSettings(map[string]string{"layout": "'BaseLayout'"}, "/json_rpc"),
	})))

	// schema dump for the repo, only when running from the repo root
	if global.Dev {
		if _, err := os.Stat("./internal/web"); err == nil {
			lo.Must0(
				os.WriteFile(
					"./internal/web/openapi.json",
					lo.Must(json.MarshalIndent(apiSchema.Reflector().Spec, "", "  ")),
					os.ModePerm,
				),
			)
		}
	}

	return server
}
