package command

import (
	"fmt"
	"reflect"

	"github.com/jorgsowa/phpfront/internal/ast"
)

// dumpNode renders n as a JSON-friendly tree: every Node gets a "type" key
// (the Go struct name) alongside its fields, and any field holding a Node,
// []Node, or a more specific Stmt/Expr-shaped slice is recursively dumped
// the same way. The AST has no interface-discriminator field of its own
// (internal/ast is pure data, spec.md §4.1), so the CLI's debug dump adds
// one rather than requiring every node type to grow a Kind() method nobody
// else needs.
func dumpNode(n ast.Node) any {
	if n == nil || isNilNode(n) {
		return nil
	}
	v := reflect.ValueOf(n)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Sprintf("%v", n)
	}

	out := map[string]any{"type": v.Type().Name()}
	span := n.Span()
	out["span"] = map[string]any{
		"start": span.Start,
		"end":   span.End,
		"line":  span.Line,
		"col":   span.Column,
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Name == "SpanVal" {
			continue
		}
		out[field.Name] = dumpValue(v.Field(i))
	}
	return out
}

func dumpValue(v reflect.Value) any {
	if node, ok := asNode(v); ok {
		return dumpNode(node)
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return dumpValue(v.Elem())
	case reflect.Slice, reflect.Array:
		items := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			items = append(items, dumpValue(v.Index(i)))
		}
		return items
	case reflect.Struct:
		out := map[string]any{}
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			if !f.IsExported() {
				continue
			}
			out[f.Name] = dumpValue(v.Field(i))
		}
		return out
	default:
		return v.Interface()
	}
}

func asNode(v reflect.Value) (ast.Node, bool) {
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	iface := v.Interface()
	n, ok := iface.(ast.Node)
	if !ok || isNilNode(n) {
		return nil, false
	}
	return n, true
}

func isNilNode(n ast.Node) bool {
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	default:
		return false
	}
}
