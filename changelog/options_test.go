package changelog_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/LekoArts/changesets-changelog-github-local/changelog"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    string
		wantErr error
	}{
		{
			name: "valid map",
			raw:  map[string]interface{}{"repo": "LekoArts/gatsby-themes"},
			want: "LekoArts/gatsby-themes",
		},
		{
			name: "valid struct",
			raw:  changelog.RepoOptions{Repo: "org/repo"},
			want: "org/repo",
		},
		{
			name: "valid pointer",
			raw:  &changelog.RepoOptions{Repo: "org/repo.js"},
			want: "org/repo.js",
		},
		{
			name:    "nil",
			raw:     nil,
			wantErr: changelog.ErrMissingRepo,
		},
		{
			name:    "empty map",
			raw:     map[string]interface{}{},
			wantErr: changelog.ErrMissingRepo,
		},
		{
			name:    "empty repo",
			raw:     map[string]interface{}{"repo": ""},
			wantErr: changelog.ErrMissingRepo,
		},
		{
			name:    "nil pointer",
			raw:     (*changelog.RepoOptions)(nil),
			wantErr: changelog.ErrMissingRepo,
		},
		{
			name:    "not an object",
			raw:     "org/repo",
			wantErr: changelog.ErrMissingRepo,
		},
		{
			name:    "number",
			raw:     map[string]interface{}{"repo": float64(123)},
			wantErr: changelog.ErrInvalidRepoFormat,
		},
		{
			name:    "too many segments",
			raw:     map[string]interface{}{"repo": "a/b/c"},
			wantErr: changelog.ErrInvalidRepoFormat,
		},
		{
			name:    "no slash",
			raw:     map[string]interface{}{"repo": "repo"},
			wantErr: changelog.ErrInvalidRepoFormat,
		},
		{
			name:    "missing owner",
			raw:     map[string]interface{}{"repo": "/repo"},
			wantErr: changelog.ErrInvalidRepoFormat,
		},
		{
			name:    "missing name",
			raw:     map[string]interface{}{"repo": "org/"},
			wantErr: changelog.ErrInvalidRepoFormat,
		},
		{
			name:    "embedded space",
			raw:     map[string]interface{}{"repo": "my org/repo"},
			wantErr: changelog.ErrInvalidRepoFormat,
		},
		{
			name:    "surrounding whitespace",
			raw:     map[string]interface{}{"repo": " org/repo "},
			wantErr: changelog.ErrInvalidRepoFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := changelog.ParseOptions(tt.raw)
			if tt.wantErr != nil {
				gt.Error(t, err)
				gt.Value(t, errors.Is(err, tt.wantErr)).Equal(true)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, got.Repo).Equal(tt.want)
		})
	}
}

func TestParseOptions_MissingRepoMessageIsStable(t *testing.T) {
	_, errEmpty := changelog.ParseOptions(map[string]interface{}{})
	_, errNil := changelog.ParseOptions(nil)

	gt.Error(t, errEmpty)
	gt.Error(t, errNil)
	gt.Value(t, errEmpty.Error()).Equal(errNil.Error())
	gt.String(t, errNil.Error()).Contains(`"repo": "org/repo"`)
}
