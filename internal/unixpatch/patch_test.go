// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unixpatch

import (
	"os/exec"
	"strings"
	"testing"
)

func TestPatch(t *testing.T) {
	if _, err := exec.LookPath("patch"); err != nil {
		t.Skip("patch is not installed")
	}

	tests := []struct {
		name string
		orig string
		diff string
		want string
	}{
		{
			name: "empty-diff",
			orig: "a\nb\n",
			diff: "",
			want: "a\nb\n",
		},
		{
			name: "change",
			orig: "a\nb\nc\n",
			diff: "2c2\n< b\n---\n> x\n",
			want: "a\nx\nc\n",
		},
		{
			name: "add-at-start",
			orig: "a\n",
			diff: "0a1\n> x\n",
			want: "x\na\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Patch(tt.orig, tt.diff)
			if err != nil {
				t.Fatalf("Patch(...) failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Patch(...) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPatchError(t *testing.T) {
	if _, err := exec.LookPath("patch"); err != nil {
		t.Skip("patch is not installed")
	}

	_, err := Patch("a\n", "5c5\n< nope\n---\n> x\n")
	if err == nil {
		t.Fatal("Patch(...) succeeded for a diff that doesn't apply, want error")
	}
	if !strings.Contains(err.Error(), "normal diff") {
		t.Errorf("Patch(...) returned %q, want an error about the normal diff", err)
	}
}
