package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"verdict.dev/pkg/verdict/internal/domain"
	m "verdict.dev/pkg/verdict/internal/model"
)

func TestListCmd_PassesPaths(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Paths) == 2 &&
			args.Paths[0] == m.Path("./cmd") &&
			args.Paths[1] == m.Path("./internal/...") &&
			len(args.Exclude) == 0
	})).Return(nil)

	cmd.SetArgs([]string{"list", "./cmd", "./internal/..."})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_WithExcludePatterns(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Paths) == 0 &&
			len(args.Exclude) == 2 &&
			args.Exclude[0] == "^./examples" &&
			args.Exclude[1] == "/mocks$"
	})).Return(nil)

	cmd.SetArgs([]string{"list", "-x", "^./examples", "-x", "/mocks$"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_WorkflowError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().List(mock.Anything, mock.Anything).Return(assert.AnError)

	cmd.SetArgs([]string{"list"})
	require.Error(t, cmd.Execute())
}
