package ast

// Visitor is called once per node during Walk; returning false skips the
// node's children.
type Visitor func(Node) bool

// Walk traverses the tree rooted at n in depth-first, pre-order fashion,
// calling visit for every statement, expression and class member it
// reaches, and for ElseIfClause, SwitchCase, CatchClause and PropertyHook
// records. Parameters, arguments, array elements and match arms are not
// visited themselves (their expressions are), nor are the BlockStmt bodies
// of functions, methods, closures, hooks and try/catch/finally (their
// statements are). Type hints, attributes, names, member names and
// break/continue levels are not descended into. Consumers needing a different traversal order should walk the
// fields directly — this is a convenience, not the canonical representation
// (spec.md §9: "A visitor/walker is not part of the core — downstream").
func Walk(n Node, visit Visitor) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}

	switch x := n.(type) {
	case *Program:
		for _, s := range x.Stmts {
			Walk(s, visit)
		}

	case *ExprStmt:
		Walk(x.X, visit)
	case *EchoStmt:
		walkExprs(x.Values, visit)
	case *ReturnStmt:
		Walk(x.Value, visit)
	case *IfStmt:
		Walk(x.Cond, visit)
		Walk(x.Then, visit)
		for _, ei := range x.ElseIfs {
			Walk(ei, visit)
		}
		Walk(x.Else, visit)
	case *ElseIfClause:
		Walk(x.Cond, visit)
		Walk(x.Body, visit)
	case *WhileStmt:
		Walk(x.Cond, visit)
		Walk(x.Body, visit)
	case *DoWhileStmt:
		Walk(x.Body, visit)
		Walk(x.Cond, visit)
	case *ForStmt:
		walkExprs(x.Init, visit)
		walkExprs(x.Cond, visit)
		walkExprs(x.Step, visit)
		Walk(x.Body, visit)
	case *ForeachStmt:
		Walk(x.Subject, visit)
		Walk(x.Key, visit)
		Walk(x.Value, visit)
		Walk(x.Body, visit)
	case *SwitchStmt:
		Walk(x.Subject, visit)
		for _, c := range x.Cases {
			Walk(c, visit)
		}
	case *SwitchCase:
		Walk(x.Test, visit)
		for _, s := range x.Body {
			Walk(s, visit)
		}
	case *BlockStmt:
		for _, s := range x.Stmts {
			Walk(s, visit)
		}
	case *FunctionDecl:
		walkParams(x.Params, visit)
		for _, s := range x.Body.Stmts {
			Walk(s, visit)
		}
	case *ClassDecl:
		for _, m := range x.Members {
			Walk(m, visit)
		}
	case *NamespaceStmt:
		for _, s := range x.Body {
			Walk(s, visit)
		}
	case *ConstStmt:
		walkExprs(x.Values, visit)
	case *StaticStmt:
		for _, v := range x.Vars {
			Walk(v.Default, visit)
		}
	case *DeclareStmt:
		for _, d := range x.Directives {
			Walk(d.Value, visit)
		}
		Walk(x.Body, visit)
	case *TryStmt:
		for _, s := range x.Body.Stmts {
			Walk(s, visit)
		}
		for _, c := range x.Catches {
			Walk(c, visit)
		}
		if x.Finally != nil {
			for _, s := range x.Finally.Stmts {
				Walk(s, visit)
			}
		}
	case *CatchClause:
		for _, s := range x.Body.Stmts {
			Walk(s, visit)
		}
	case *UnsetStmt:
		walkExprs(x.Vars, visit)

	case *PropertyMember:
		walkExprs(x.Defaults, visit)
		for _, h := range x.Hooks {
			Walk(h, visit)
		}
	case *PropertyHook:
		Walk(x.Expr, visit)
		if x.Body != nil {
			for _, s := range x.Body.Stmts {
				Walk(s, visit)
			}
		}
	case *MethodMember:
		walkParams(x.Params, visit)
		if x.Body != nil {
			for _, s := range x.Body.Stmts {
				Walk(s, visit)
			}
		}
	case *ClassConstMember:
		walkExprs(x.Values, visit)
	case *EnumCaseMember:
		Walk(x.Value, visit)

	case *ArrayLit:
		for _, el := range x.Elements {
			Walk(el.Key, visit)
			Walk(el.Value, visit)
		}
	case *BinaryExpr:
		Walk(x.Left, visit)
		Walk(x.Right, visit)
	case *AssignExpr:
		Walk(x.Target, visit)
		Walk(x.Value, visit)
	case *UnaryExpr:
		Walk(x.Operand, visit)
	case *TernaryExpr:
		Walk(x.Cond, visit)
		Walk(x.Then, visit)
		Walk(x.Else, visit)
	case *CoalesceExpr:
		Walk(x.Left, visit)
		Walk(x.Right, visit)
	case *CastExpr:
		Walk(x.Operand, visit)
	case *CallExpr:
		Walk(x.Callee, visit)
		walkArgs(x.Args, visit)
	case *MethodCallExpr:
		Walk(x.Object, visit)
		walkArgs(x.Args, visit)
	case *NullsafeMethodCallExpr:
		Walk(x.Object, visit)
		walkArgs(x.Args, visit)
	case *StaticCallExpr:
		Walk(x.Class, visit)
		walkArgs(x.Args, visit)
	case *PropertyAccessExpr:
		Walk(x.Object, visit)
	case *NullsafePropertyAccessExpr:
		Walk(x.Object, visit)
	case *StaticPropertyAccessExpr:
		Walk(x.Class, visit)
	case *ClassConstAccessExpr:
		Walk(x.Class, visit)
	case *IndexExpr:
		Walk(x.Subject, visit)
		Walk(x.Index, visit)
	case *NewExpr:
		Walk(x.Class, visit)
		walkArgs(x.Args, visit)
		if x.AnonClass != nil {
			Walk(x.AnonClass, visit)
		}
	case *CloneExpr:
		Walk(x.Operand, visit)
	case *InstanceOfExpr:
		Walk(x.Operand, visit)
		Walk(x.Class, visit)
	case *ClosureExpr:
		walkParams(x.Params, visit)
		if x.Body != nil {
			for _, s := range x.Body.Stmts {
				Walk(s, visit)
			}
		}
	case *ArrowFnExpr:
		walkParams(x.Params, visit)
		Walk(x.Body, visit)
	case *MatchExpr:
		Walk(x.Subject, visit)
		for _, arm := range x.Arms {
			walkExprs(arm.Conds, visit)
			Walk(arm.Body, visit)
		}
	case *YieldExpr:
		Walk(x.Key, visit)
		Walk(x.Value, visit)
	case *YieldFromExpr:
		Walk(x.Source, visit)
	case *ThrowExpr:
		Walk(x.Value, visit)
	case *FirstClassCallableExpr:
		Walk(x.Callee, visit)
	case *PipeExpr:
		Walk(x.Value, visit)
		Walk(x.Callee, visit)
	case *IncludeExpr:
		Walk(x.Path, visit)
	case *PrintExpr:
		Walk(x.Value, visit)
	case *IssetExpr:
		walkExprs(x.Vars, visit)
	case *EmptyExpr:
		Walk(x.Value, visit)
	case *EvalExpr:
		Walk(x.Value, visit)
	case *ExitExpr:
		Walk(x.Value, visit)
	case *InterpString:
		walkExprs(x.Segments, visit)
	case *VariableExpr:
		Walk(x.NameExpr, visit)

	// No children walked: IntLit, FloatLit, StringLit, NowdocLit, BoolLit, NullLit,
	// MagicConstExpr, NameExpr, ErrorExpr, ErrorStmt, InlineHTMLStmt,
	// LabelStmt, GotoStmt, BreakStmt, ContinueStmt, GlobalStmt, HaltCompilerStmt.
	}
}

func walkExprs(exprs []Expr, visit Visitor) {
	for _, e := range exprs {
		Walk(e, visit)
	}
}

func walkArgs(args []*Argument, visit Visitor) {
	for _, a := range args {
		Walk(a.Value, visit)
	}
}

func walkParams(params []*Parameter, visit Visitor) {
	for _, p := range params {
		Walk(p.Default, visit)
	}
}
