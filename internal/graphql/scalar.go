// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package graphql

import (
	"strconv"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// jsonScalar passes arbitrary JSON values through unmodified. It carries the
// résumé document, whose schema is versioned and validated by the résumé
// domain rather than by GraphQL types.
var jsonScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "JSON",
	Description: "An arbitrary JSON value.",
	Serialize: func(value interface{}) interface{} {
		return value
	},
	ParseValue: func(value interface{}) interface{} {
		return value
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		return parseLiteral(valueAST)
	},
})

// parseLiteral converts an inline AST value to its Go representation.
func parseLiteral(valueAST ast.Value) interface{} {
	switch value := valueAST.(type) {
	case *ast.StringValue:
		return value.Value
	case *ast.BooleanValue:
		return value.Value
	case *ast.IntValue:
		// The AST stores numbers as source text.
		number, err := strconv.Atoi(value.Value)
		if err != nil {
			return nil
		}
		return number
	case *ast.FloatValue:
		number, err := strconv.ParseFloat(value.Value, 64)
		if err != nil {
			return nil
		}
		return number
	case *ast.ObjectValue:
		object := make(map[string]interface{}, len(value.Fields))
		for _, field := range value.Fields {
			object[field.Name.Value] = parseLiteral(field.Value)
		}
		return object
	case *ast.ListValue:
		list := make([]interface{}, 0, len(value.Values))
		for _, item := range value.Values {
			list = append(list, parseLiteral(item))
		}
		return list
	default:
		return nil
	}
}
