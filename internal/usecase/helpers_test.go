package usecase_test

import (
	"strings"
	"testing"

	"eato/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// エラー文言の部分一致チェック
func assertErrContains(t *testing.T, err error, substr string) {
	t.Helper()
	assert.Error(t, err)
	if err != nil {
		assert.True(t, strings.Contains(err.Error(), substr),
			"error %q does not contain %q", err.Error(), substr)
	}
}

// HTTPErrorのステータス確認
func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, status, he.Status)
	}
}
