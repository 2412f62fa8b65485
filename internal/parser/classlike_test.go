package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorgsowa/phpfront/internal/ast"
)

func parseDeclSrc(t *testing.T, src string) ast.Stmt {
	t.Helper()
	p := New([]byte("<?php " + src))
	prog := p.Parse()
	require.Empty(t, p.Diagnostics(), "unexpected diagnostics for %q", src)
	require.Len(t, prog.Stmts, 1)
	return prog.Stmts[0]
}

func TestClassDecl_BasicWithExtendsAndImplements(t *testing.T) {
	stmt := parseDeclSrc(t, "class Foo extends Bar implements Baz, Qux {}")

	decl, ok := stmt.(*ast.ClassDecl)
	require.True(t, ok, "expected ClassDecl, got %T", stmt)
	require.Equal(t, ast.ClassLikeClass, decl.Kind)
	require.Equal(t, "Foo", decl.Name)
	require.Len(t, decl.Extends, 1)
	require.Equal(t, "Bar", decl.Extends[0].String())
	require.Len(t, decl.Implements, 2)
	require.Equal(t, "Baz", decl.Implements[0].String())
	require.Equal(t, "Qux", decl.Implements[1].String())
}

func TestClassDecl_AbstractFinalModifiers(t *testing.T) {
	stmt := parseDeclSrc(t, "abstract class Foo {}")
	decl := stmt.(*ast.ClassDecl)
	require.True(t, decl.Modifiers.Abstract)
	require.False(t, decl.Modifiers.Final)
}

func TestInterfaceDecl_MultipleExtends(t *testing.T) {
	stmt := parseDeclSrc(t, "interface Foo extends Bar, Baz {}")
	decl := stmt.(*ast.ClassDecl)
	require.Equal(t, ast.ClassLikeInterface, decl.Kind)
	require.Len(t, decl.Extends, 2)
}

func TestTraitDecl_WithAdaptations(t *testing.T) {
	stmt := parseDeclSrc(t, `
class Foo {
	use A, B {
		A::bar insteadof B;
		B::bar as protected baz;
	}
}`)
	decl := stmt.(*ast.ClassDecl)
	require.Len(t, decl.Members, 1)

	use, ok := decl.Members[0].(*ast.UseTraitMember)
	require.True(t, ok, "expected UseTraitMember, got %T", decl.Members[0])
	require.Len(t, use.Traits, 2)
	require.Len(t, use.Adaptations, 2)

	insteadof := use.Adaptations[0]
	require.Equal(t, "A", insteadof.Trait)
	require.Equal(t, "bar", insteadof.Method)
	require.Equal(t, []string{"B"}, insteadof.Insteadof)

	as := use.Adaptations[1]
	require.Equal(t, "B", as.Trait)
	require.Equal(t, "bar", as.Method)
	require.Equal(t, "baz", as.As)
	require.True(t, as.HasAsVis)
	require.Equal(t, ast.VisProtected, as.AsVisibility.Visibility)
}

func TestEnumDecl_BackedWithCases(t *testing.T) {
	stmt := parseDeclSrc(t, `
enum Suit: string {
	case Hearts = 'H';
	case Spades = 'S';
}`)
	decl := stmt.(*ast.ClassDecl)
	require.Equal(t, ast.ClassLikeEnum, decl.Kind)
	require.NotNil(t, decl.BackingType)
	require.Len(t, decl.Members, 2)

	hearts, ok := decl.Members[0].(*ast.EnumCaseMember)
	require.True(t, ok)
	require.Equal(t, "Hearts", hearts.Name)
	require.NotNil(t, hearts.Value)
}

func TestPropertyMember_WithDefaultAndType(t *testing.T) {
	stmt := parseDeclSrc(t, `
class Foo {
	public int $a = 1, $b = 2;
}`)
	decl := stmt.(*ast.ClassDecl)
	require.Len(t, decl.Members, 1)

	prop, ok := decl.Members[0].(*ast.PropertyMember)
	require.True(t, ok, "expected PropertyMember, got %T", decl.Members[0])
	require.True(t, prop.Modifiers.HasVisibility)
	require.Equal(t, ast.VisPublic, prop.Modifiers.Visibility)
	require.Equal(t, []string{"a", "b"}, prop.Names)
	require.Len(t, prop.Defaults, 2)
	require.NotNil(t, prop.Defaults[0])
	require.NotNil(t, prop.Defaults[1])
}

func TestPropertyMember_AsymmetricVisibility(t *testing.T) {
	stmt := parseDeclSrc(t, `
class Foo {
	public private(set) int $id;
}`)
	decl := stmt.(*ast.ClassDecl)
	prop := decl.Members[0].(*ast.PropertyMember)

	require.True(t, prop.Modifiers.HasVisibility)
	require.Equal(t, ast.VisPublic, prop.Modifiers.Visibility)
	require.True(t, prop.Modifiers.HasSetVisibility)
	require.Equal(t, ast.VisPrivate, prop.Modifiers.SetVisibility)
}

func TestPropertyMember_HooksShortAndLongForm(t *testing.T) {
	stmt := parseDeclSrc(t, `
class Foo {
	public string $name {
		get => $this->name;
		set(string $value) {
			$this->name = strtolower($value);
		}
	}
}`)
	decl := stmt.(*ast.ClassDecl)
	prop := decl.Members[0].(*ast.PropertyMember)
	require.Len(t, prop.Names, 1)
	require.Len(t, prop.Hooks, 2)

	get := prop.Hooks[0]
	require.Equal(t, "get", get.Name)
	require.NotNil(t, get.Expr)
	require.Nil(t, get.Body)

	set := prop.Hooks[1]
	require.Equal(t, "set", set.Name)
	require.NotNil(t, set.Param)
	require.NotNil(t, set.Body)
}

func TestMethodMember_AbstractHasNoBody(t *testing.T) {
	stmt := parseDeclSrc(t, `
abstract class Foo {
	abstract public function bar(int $x): string;
}`)
	decl := stmt.(*ast.ClassDecl)
	method := decl.Members[0].(*ast.MethodMember)
	require.Equal(t, "bar", method.Name)
	require.True(t, method.Modifiers.Abstract)
	require.Nil(t, method.Body)
	require.Len(t, method.Params, 1)
	require.NotNil(t, method.ReturnType)
}

func TestMethodMember_ByRefReturn(t *testing.T) {
	stmt := parseDeclSrc(t, `
class Foo {
	public function &bar() {
		return $this->x;
	}
}`)
	decl := stmt.(*ast.ClassDecl)
	method := decl.Members[0].(*ast.MethodMember)
	require.True(t, method.ByRefReturn)
	require.NotNil(t, method.Body)
}

func TestClassConstMember_Typed(t *testing.T) {
	stmt := parseDeclSrc(t, `
class Foo {
	const int BAR = 1, BAZ = 2;
}`)
	decl := stmt.(*ast.ClassDecl)
	c := decl.Members[0].(*ast.ClassConstMember)
	require.Equal(t, []string{"BAR", "BAZ"}, c.Names)
	require.Len(t, c.Values, 2)
	require.NotNil(t, c.Type)
}
