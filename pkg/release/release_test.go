package release_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergiomgn/EasyFinance/pkg/release"
)

func TestValidateTag(t *testing.T) {
	tests := []struct {
		tag     string
		wantErr bool
	}{
		{tag: "v1.0.0"},
		{tag: "v0.1.0"},
		{tag: "v2.10.3"},
		{tag: "v1.0.0-rc.1"},
		{tag: "1.0.0", wantErr: true},
		{tag: "v", wantErr: true},
		{tag: "version-one", wantErr: true},
		{tag: "latest", wantErr: true},
		{tag: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			v, err := release.ValidateTag(tt.tag)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, v)
		})
	}
}

func TestValidateTagOrdering(t *testing.T) {
	older, err := release.ValidateTag("v1.9.0")
	require.NoError(t, err)
	newer, err := release.ValidateTag("v1.10.0")
	require.NoError(t, err)

	// Version order, not lexical order.
	assert.True(t, older.LessThan(newer))
}
