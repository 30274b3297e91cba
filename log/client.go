/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package log

import "os"

// nopCloseStderr wraps os.Stderr so New can treat it as an io.WriteCloser
// without a Close call tearing down the process's actual stderr.
type nopCloseStderr struct{}

func (nopCloseStderr) Write(p []byte) (int, error) { return os.Stderr.Write(p) }
func (nopCloseStderr) Close() error                { return nil }

// NewClient builds the logger a Session hands to its dispatch loop: INFO
// level by default, writing to path if given, falling back to stderr
// when path is empty so a quick throwaway bot still sees its own errors.
func NewClient(path string) (*Logger, error) {
	if path == `` {
		return New(nopCloseStderr{}), nil
	}
	return NewFile(path)
}
