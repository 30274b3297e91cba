/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package mbm

import (
	"regexp"
	"strconv"
	"strings"
)

var lineComment = regexp.MustCompile(`//[^\n]*`)

// ParseString parses an MBM schema file's contents into its Definitions.
// Comments are stripped first, then the remainder is split on ';'; empty
// or whitespace-only statements are skipped. An empty input yields zero
// definitions. A statement with a number of "->" occurrences other than
// one is rejected with SchemaError.
func ParseString(src string) ([]Definition, error) {
	stripped := lineComment.ReplaceAllString(src, "")
	var defs []Definition
	for _, stmt := range strings.Split(stripped, ";") {
		text := strings.TrimSpace(stmt)
		if text == "" {
			continue
		}
		def, err := parseStatement(text)
		if err != nil {
			return nil, err
		}
		if err := validate(&def); err != nil {
			if se, ok := err.(*SchemaError); ok {
				se.Text = text
			}
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func parseStatement(text string) (Definition, error) {
	if strings.Count(text, "->") != 1 {
		return Definition{}, schemaErr(text, "expected exactly one ->")
	}
	left, class := splitOnce(text, "->")
	left = strings.TrimSpace(left)
	class = strings.TrimSpace(class)

	fields := strings.Fields(left)
	if len(fields) == 0 {
		return Definition{}, schemaErr(text, "missing definition name")
	}
	head, rest := fields[0], fields[1:]

	headParts := strings.Split(head, "?")
	nameAndID, params := headParts[0], headParts[1:]

	def := Definition{Class: class, Params: params}
	if idx := strings.IndexByte(nameAndID, '#'); idx >= 0 {
		def.Name = nameAndID[:idx]
		hexID := strings.TrimPrefix(strings.TrimPrefix(nameAndID[idx+1:], "0x"), "0X")
		id, err := strconv.ParseInt(hexID, 16, 64)
		if err != nil {
			return Definition{}, schemaErr(text, "bad hex id")
		}
		def.HasID = true
		def.ID = int(id)
	} else {
		def.Name = nameAndID
	}

	for _, tok := range rest {
		arg, err := parseArgToken(tok, text)
		if err != nil {
			return Definition{}, err
		}
		def.Args = append(def.Args, arg)
	}
	return def, nil
}

// parseArgToken recognizes the four argument token shapes documented in
// §4.3: a bare "?" (ConditionDisable), "?name?op?value" (Condition), a
// bare name with no ':' (ArgReference), or "name:type-expr"
// (ArgDefinition).
func parseArgToken(tok, stmtText string) (Arg, error) {
	if tok == "?" {
		return ConditionDisable{}, nil
	}
	if strings.HasPrefix(tok, "?") {
		parts := strings.SplitN(tok[1:], "?", 3)
		if len(parts) != 3 {
			return nil, schemaErr(stmtText, "malformed condition "+tok)
		}
		return Condition{Name: parts[0], Op: parts[1], Value: parts[2]}, nil
	}
	if !strings.Contains(tok, ":") {
		return ArgReference{Name: tok}, nil
	}

	name, typeExpr := splitOnce(tok, ":")
	if name == "" {
		return nil, schemaErr(stmtText, "empty argument name in "+tok)
	}

	// type-expr := [vec_count_cls+]cls[?][@arg[@arg...]]
	parts := strings.Split(typeExpr, "@")
	core := parts[0]
	ctorArgs := parts[1:]

	vecCountCls := ""
	cls := core
	if plus := strings.IndexByte(core, '+'); plus >= 0 {
		vecCountCls = core[:plus]
		cls = core[plus+1:]
	}

	optional := false
	if strings.HasSuffix(cls, "?") {
		optional = true
		cls = cls[:len(cls)-1]
	}
	if cls == "" {
		return nil, schemaErr(stmtText, "empty type in "+tok)
	}

	return newArgDefinition(name, cls, vecCountCls, optional, ctorArgs), nil
}

func splitOnce(s, sep string) (string, string) {
	idx := strings.Index(s, sep)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx+len(sep):]
}
