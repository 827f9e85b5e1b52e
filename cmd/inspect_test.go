package cmd

import (
	"bytes"
	"testing"

	"github.com/iksnae/slack-export/testutil"
)

func TestInspectCommand(t *testing.T) {
	root := testutil.CreateArchiveFixture(t)

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "existing day batch",
			args: []string{"inspect", root, "general", "2023-01-05"},
		},
		{
			name: "json format",
			args: []string{"inspect", root, "general", "2023-01-05", "--format", "json"},
		},
		{
			name:    "unknown conversation",
			args:    []string{"inspect", root, "nope", "2023-01-05"},
			wantErr: true,
		},
		{
			name:    "missing day batch",
			args:    []string{"inspect", root, "general", "1999-12-31"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})
			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("inspect error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInspectCommand_Registered(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "inspect" {
			found = true
			if cmd.Flag("format") == nil {
				t.Error("inspect command should expose a --format flag")
			}
		}
	}
	if !found {
		t.Error("inspect command not registered")
	}
}
