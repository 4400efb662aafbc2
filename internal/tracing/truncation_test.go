package tracing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSafeAttributeValueMasksPII 敏感属性名的值应被掩码
func TestSafeAttributeValueMasksPII(t *testing.T) {
	assert.Equal(t, "j****************m", SafeAttributeValue("contact_email", "jane.doe@gmail.com", 0))
	assert.Equal(t, "**", SafeAttributeValue("phone", "12", 0))
	assert.Equal(t, "J******e", SafeAttributeValue("user_name", "Jane Doe", 0))
}

// TestSafeAttributeValueTruncates 普通长值截断并加省略号
func TestSafeAttributeValueTruncates(t *testing.T) {
	long := strings.Repeat("x", 300)
	got := SafeAttributeValue("resume_text", long, MaxResumeLength)
	assert.Equal(t, MaxResumeLength+3, len(got))
	assert.True(t, strings.HasSuffix(got, "..."))

	short := "short value"
	assert.Equal(t, short, SafeAttributeValue("resume_text", short, MaxResumeLength))
}

// TestSafeAttributeValueDefaultLength maxLength非法时退回默认值
func TestSafeAttributeValueDefaultLength(t *testing.T) {
	long := strings.Repeat("y", 400)
	got := SafeAttributeValue("plain", long, 0)
	assert.Equal(t, DefaultMaxLength+3, len(got))
}
