/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package mbm

import "fmt"

// validate enforces the §3 Definition invariants in place, resolving
// ArgReference.RefIndex and ArgDefinition.Referenced as it goes.
func validate(def *Definition) error {
	seen := make(map[string]int)
	sawCondition := false

	for i, arg := range def.Args {
		switch a := arg.(type) {
		case ArgDefinition:
			if sawCondition {
				return schemaErr(def.Name, "argument definition after a condition")
			}
			if _, dup := seen[a.Name]; dup {
				return schemaErr(def.Name, fmt.Sprintf("duplicate argument %q", a.Name))
			}
			seen[a.Name] = i
		case Condition:
			sawCondition = true
			def.HasOptionalContent = true
			if _, ok := seen[a.Name]; !ok {
				isParam := false
				for _, p := range def.Params {
					if p == a.Name {
						isParam = true
						break
					}
				}
				if !isParam {
					return schemaErr(def.Name, fmt.Sprintf("condition references unknown %q", a.Name))
				}
			}
		case ConditionDisable:
			// closes the active condition; nothing to validate
		case ArgReference:
			idx, ok := seen[a.Name]
			if !ok {
				return schemaErr(def.Name, fmt.Sprintf("reference to undeclared argument %q", a.Name))
			}
			ref := def.Args[idx].(ArgDefinition)
			ref.Referenced = true
			def.Args[idx] = ref
			def.Args[i] = ArgReference{Name: a.Name, RefIndex: idx}
		}
	}

	for _, arg := range def.Args {
		if ad, ok := arg.(ArgDefinition); ok && ad.Optional {
			def.HasOptionalContent = true
		}
	}
	return nil
}
