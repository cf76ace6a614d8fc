package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMangledName(t *testing.T) {
	assert.Equal(t, "com$google$java$contract$P$push", Precondition.MangledName("push"))
	assert.Equal(t, "com$google$java$contract$QO$pop", OldValue.MangledName("pop"))
	assert.Equal(t, "access$0", AccessHelper.MangledName("0"))

	assert.Equal(t, "com$google$java$contract$PH$push", Precondition.MangledHelperName("push"))
	assert.Equal(t, "com$google$java$contract$IH$deque", Invariant.MangledHelperName("deque"))

	assert.Panics(t, func() { Helper.MangledName("push") })
	assert.Panics(t, func() { LambdaHelper.MangledHelperName("push") })
}

func TestMangledNamesAreSimpleNames(t *testing.T) {
	for _, k := range allKinds() {
		if k.HasNameSpace() {
			assert.True(t, IsSimpleName(k.MangledName("push")), "%s", k)
		}
		if !k.IsHelperContract() {
			assert.True(t, IsSimpleName(k.MangledHelperName("push")), "%s", k)
		}
	}
}

func TestIsSimpleName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"", false},
		{"push", true},
		{"_push", true},
		{"$lambda", true},
		{"push2", true},
		{"2push", false},
		{"com$google$java$contract$P", true},
		{"com.google.java.contract.P", false},
		{"push pop", false},
		{"push-pop", false},
		{"données", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSimpleName(tt.name))
		})
	}
}
