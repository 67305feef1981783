// Package mcpsrv embeds the typeshi MCP server in another program.
//
// Out of the box a server answers typeshi_generate and typeshi_json_schema,
// keeps recently generated modules readable at typeshi://module/{key} and
// offers two prompts. Options adjust generation, swap the builtins for your
// own handlers or add to them:
//
//	srv, err := mcpsrv.NewServer(
//	    mcpsrv.WithHomeModule("app.models"),
//	    mcpsrv.WithHooks(typeddict.Hooks{
//	        valuetree.KindFloat: func(typeddict.Ident, any) (typeddict.Type, error) {
//	            return typeddict.PlainOf(typeddict.Ident{Name: "Decimal", Module: "decimal"}), nil
//	        },
//	    }),
//	    mcpsrv.WithTool(&mcp.Tool{Name: "count_keys"}, countKeys),
//	)
//	if err != nil {
//	    return err
//	}
//	defer srv.Close()
//	return srv.Run(ctx)
//
// Anything not set by an option comes from the TYPESHI_* and LOG_*
// environment variables.
package mcpsrv
