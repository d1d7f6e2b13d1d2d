package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nh/internal/adapters/config"
	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name        string
		content     *string
		expected    domain.Config
		expectedErr error
		errContains string
	}{
		{
			name:     "missing file uses defaults",
			content:  nil,
			expected: domain.Config{Flake: "nixpkgs"},
		},
		{
			name:     "empty file uses defaults",
			content:  ptr(""),
			expected: domain.Config{Flake: "nixpkgs"},
		},
		{
			name: "full file",
			content: ptr(`flake: github:NixOS/nixpkgs/nixos-unstable
ignore:
  - result
  - "*.generated.nix"
`),
			expected: domain.Config{
				Flake:  "github:NixOS/nixpkgs/nixos-unstable",
				Ignore: []string{"result", "*.generated.nix"},
			},
		},
		{
			name:     "empty flake keeps default",
			content:  ptr("flake: \"\"\n"),
			expected: domain.Config{Flake: "nixpkgs"},
		},
		{
			name:        "malformed yaml",
			content:     ptr("flake: [unterminated\n"),
			expectedErr: domain.ErrConfigInvalid,
		},
		{
			name:        "unknown key",
			content:     ptr("flakes: nixpkgs\n"),
			expectedErr: domain.ErrConfigInvalid,
			errContains: "failed to parse config file",
		},
		{
			name:        "bad ignore pattern",
			content:     ptr("ignore: [\"[\"]\n"),
			expectedErr: domain.ErrConfigInvalid,
			errContains: "malformed ignore pattern",
		},
		{
			name:        "bad ignore pattern after a wildcard",
			content:     ptr("ignore: [\"res*[\"]\n"),
			expectedErr: domain.ErrConfigInvalid,
			errContains: "malformed ignore pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

			path := filepath.Join(t.TempDir(), config.DefaultFilename)
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600))
			}

			cfg, err := config.NewLoader(mockLogger).Load(path)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				if tt.errContains != "" {
					require.ErrorContains(t, err, tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestLoader_Load_Unreadable(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	// A directory cannot be read as a file.
	_, err := config.NewLoader(mockLogger).Load(t.TempDir())
	require.ErrorContains(t, err, "failed to read config file")
}

func ptr(s string) *string {
	return &s
}
