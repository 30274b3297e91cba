/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package version

import (
	"fmt"
	"io"
)

const (
	MajorVersion int = 0
	MinorVersion int = 1
	PointVersion int = 0

	// ProtocolVersion is the protocol number this client speaks:
	// release 1.12.2, the last release before the flattening.
	ProtocolVersion int32 = 340

	// GameVersion is the human-readable release ProtocolVersion maps to.
	GameVersion string = "1.12.2"
)

func PrintVersion(wtr io.Writer) {
	fmt.Fprintf(wtr, "Version:\t%d.%d.%d\n", MajorVersion, MinorVersion, PointVersion)
	fmt.Fprintf(wtr, "Protocol:\t%d (%s)\n", ProtocolVersion, GameVersion)
}
