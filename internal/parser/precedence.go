package parser

import "github.com/jorgsowa/phpfront/internal/lexer"

// bindingPower is the (left, right) pair from spec.md §4.2.3's operator
// table. A left-associative operator has left < right; right-associative
// has left > right; non-associative operators use equal powers, so the
// inner climb stops at a second one (it compares with <=) and parseExpr
// diagnoses that second operator as a chain.
type bindingPower struct {
	left, right int
}

const (
	bpNone = 0

	bpOrKw       = 2
	bpXorKw      = 4
	bpAndKw      = 6
	bpAssign     = 8
	bpTernary    = 10
	bpCoalesce   = 12
	bpLogicalOr  = 14
	bpLogicalAnd = 16
	bpBitOr      = 18
	bpBitXor     = 20
	bpBitAnd     = 22
	bpEquality   = 23
	bpComparison = 25
	bpShift      = 28
	bpAdditive   = 30
	bpMultiplic  = 32
	bpPow        = 34
	bpInstanceOf = 36
	bpPipe       = 38
	bpUnary      = 40
	bpPostfix    = 50
)

// infixBindingPowers maps every binary/assignment operator token to its
// (left, right) pair. Tokens absent here are not valid infix/postfix
// operators at the binary-climb level (postfix call/index/member access
// are handled separately in parsePostfixChain since they apply unconditionally
// at bpPostfix regardless of what follows).
var infixBindingPowers = map[lexer.Kind]bindingPower{
	lexer.KwOr:  {bpOrKw, bpOrKw + 1},
	lexer.KwXor: {bpXorKw, bpXorKw + 1},
	lexer.KwAnd: {bpAndKw, bpAndKw + 1},

	lexer.Assign:     {bpAssign + 1, bpAssign},
	lexer.PlusEq:     {bpAssign + 1, bpAssign},
	lexer.MinusEq:    {bpAssign + 1, bpAssign},
	lexer.StarEq:     {bpAssign + 1, bpAssign},
	lexer.SlashEq:    {bpAssign + 1, bpAssign},
	lexer.PercentEq:  {bpAssign + 1, bpAssign},
	lexer.PowEq:      {bpAssign + 1, bpAssign},
	lexer.DotEq:      {bpAssign + 1, bpAssign},
	lexer.AmpEq:      {bpAssign + 1, bpAssign},
	lexer.PipeEq:     {bpAssign + 1, bpAssign},
	lexer.CaretEq:    {bpAssign + 1, bpAssign},
	lexer.ShlEq:      {bpAssign + 1, bpAssign},
	lexer.ShrEq:      {bpAssign + 1, bpAssign},
	lexer.CoalesceEq: {bpAssign + 1, bpAssign},
	lexer.RefAssign:  {bpAssign + 1, bpAssign},

	lexer.Question: {bpTernary + 1, bpTernary - 1},
	lexer.Coalesce: {bpCoalesce + 1, bpCoalesce},

	lexer.OrOr:  {bpLogicalOr, bpLogicalOr + 1},
	lexer.AndAnd: {bpLogicalAnd, bpLogicalAnd + 1},

	lexer.Pipe:  {bpBitOr, bpBitOr + 1},
	lexer.Caret: {bpBitXor, bpBitXor + 1},
	lexer.Amp:   {bpBitAnd, bpBitAnd + 1},

	lexer.Eq:        {bpEquality, bpEquality},
	lexer.NotEq:     {bpEquality, bpEquality},
	lexer.IdEq:      {bpEquality, bpEquality},
	lexer.IdNotEq:   {bpEquality, bpEquality},
	lexer.AltNotEq:  {bpEquality, bpEquality},
	lexer.Spaceship: {bpEquality, bpEquality},

	lexer.Lt: {bpComparison, bpComparison},
	lexer.Le: {bpComparison, bpComparison},
	lexer.Gt: {bpComparison, bpComparison},
	lexer.Ge: {bpComparison, bpComparison},

	lexer.Shl: {bpShift, bpShift + 1},
	lexer.Shr: {bpShift, bpShift + 1},

	lexer.Plus:  {bpAdditive, bpAdditive + 1},
	lexer.Minus: {bpAdditive, bpAdditive + 1},
	lexer.Dot:   {bpAdditive, bpAdditive + 1},

	lexer.Star:    {bpMultiplic, bpMultiplic + 1},
	lexer.Slash:   {bpMultiplic, bpMultiplic + 1},
	lexer.Percent: {bpMultiplic, bpMultiplic + 1},

	lexer.Pow: {bpPow, bpPow - 1}, // right-associative: left > right

	lexer.KwInstanceof: {bpInstanceOf, bpInstanceOf},

	lexer.PipeGt: {bpPipe, bpPipe + 1},
}

func lookupInfixBP(kind lexer.Kind) (bindingPower, bool) {
	bp, ok := infixBindingPowers[kind]
	return bp, ok
}

// isAssignOp reports whether kind is one of the `=`/compound-assignment
// family, which produce an *ast.AssignExpr rather than *ast.BinaryExpr.
func isAssignOp(kind lexer.Kind) bool {
	switch kind {
	case lexer.Assign, lexer.PlusEq, lexer.MinusEq, lexer.StarEq, lexer.SlashEq,
		lexer.PercentEq, lexer.PowEq, lexer.DotEq, lexer.AmpEq, lexer.PipeEq,
		lexer.CaretEq, lexer.ShlEq, lexer.ShrEq, lexer.CoalesceEq, lexer.RefAssign:
		return true
	default:
		return false
	}
}
