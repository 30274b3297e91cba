//go:build !linux
// +build !linux

/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package log

// kernelVersion is only discoverable via /proc on Linux; PrintOSInfo
// still reports the rest of the platform string on other OSes.
var kernelVersion string
