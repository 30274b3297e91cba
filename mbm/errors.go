/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package mbm

import "fmt"

// SchemaError reports an invalid MBM definition, carrying the offending
// definition's source text.
type SchemaError struct {
	Text   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("mbm: %s: %s", e.Reason, e.Text)
}

func schemaErr(text, reason string) error {
	return &SchemaError{Text: text, Reason: reason}
}
