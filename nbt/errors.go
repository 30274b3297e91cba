/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package nbt

import "errors"

var (
	// ErrUnknownKind is returned when a kind byte does not name one of
	// the 13 known tag kinds.
	ErrUnknownKind = errors.New("nbt: unknown tag kind")

	// ErrNotCompound is returned by Compound accessors when called on a
	// tag whose Kind is not Compound.
	ErrNotCompound = errors.New("nbt: tag is not a compound")

	// ErrNoSuchChild is returned when a named lookup in a Compound finds
	// no matching child.
	ErrNoSuchChild = errors.New("nbt: no child with that name")
)
