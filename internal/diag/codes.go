package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005
	LexUnterminatedRegexp       Code = 1006
	LexBadEscape                Code = 1007

	// Парсерные
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynUnclosedParen         Code = 2002
	SynUnclosedBracket       Code = 2003
	SynUnclosedBrace         Code = 2004
	SynExpectExpression      Code = 2005
	SynExpectIdentifier      Code = 2006
	SynExpectColon           Code = 2007
	SynExpectArrow           Code = 2008
	SynTrailingTokens        Code = 2009
	SynInvalidAssignTarget   Code = 2010
	SynInvalidPattern        Code = 2011
	SynRestMustBeLast        Code = 2012
	SynUnsupportedStatement  Code = 2013
	SynMixedCoalesce         Code = 2014
	SynUnaryBeforeExponent   Code = 2015
	SynTemplateUnclosedSubst Code = 2016

	// Ошибки кодогенерации директив (X_* в терминах шаблонного компилятора)
	XInfo                     Code = 3000
	XInvalidExpression        Code = 3001
	XVIfNoExpression          Code = 3002
	XVElseNoAdjacentIf        Code = 3003
	XVForNoExpression         Code = 3004
	XVForMalformedExpression  Code = 3005
	XVForTemplateKeyPlacement Code = 3006

	// Ремаппинг нативных диагностик
	MapInfo            Code = 4000
	MapNotFound        Code = 4001
	MapInvalid         Code = 4002
	MapNoMapping       Code = 4003
	MapUnknownStyle    Code = 4004
	MapMalformedRecord Code = 4005
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number",
		LexUnterminatedTemplate:     "Unterminated template literal",
		LexUnterminatedRegexp:       "Unterminated regular expression",
		LexBadEscape:                "Invalid escape sequence",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynUnclosedParen:            "Unclosed parenthesis",
		SynUnclosedBracket:          "Unclosed bracket",
		SynUnclosedBrace:            "Unclosed brace",
		SynExpectExpression:         "Expect expression",
		SynExpectIdentifier:         "Expect identifier",
		SynExpectColon:              "Expect colon",
		SynExpectArrow:              "Expect '=>'",
		SynTrailingTokens:           "Unexpected tokens after expression",
		SynInvalidAssignTarget:      "Invalid assignment target",
		SynInvalidPattern:           "Invalid binding pattern",
		SynRestMustBeLast:           "Rest element must be last",
		SynUnsupportedStatement:     "Statement is not allowed in arrow body",
		SynMixedCoalesce:            "'??' cannot be mixed with '||' or '&&' without parentheses",
		SynUnaryBeforeExponent:      "Unary operator before '**' needs parentheses",
		SynTemplateUnclosedSubst:    "Unclosed template substitution",
		XInfo:                       "Directive information",
		XInvalidExpression:          "Error parsing JavaScript expression",
		XVIfNoExpression:            "v-if/v-else-if is missing expression",
		XVElseNoAdjacentIf:          "v-else/v-else-if has no adjacent v-if or v-else-if",
		XVForNoExpression:           "v-for is missing expression",
		XVForMalformedExpression:    "v-for has invalid expression",
		XVForTemplateKeyPlacement:   "<template v-for> key should be placed on the <template> tag",
		MapInfo:                     "Source map information",
		MapNotFound:                 "Source map not found",
		MapInvalid:                  "Source map is invalid",
		MapNoMapping:                "No mapping for generated position",
		MapUnknownStyle:             "Unknown frame style",
		MapMalformedRecord:          "Malformed diagnostic record",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("X%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("MAP%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
