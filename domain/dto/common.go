package dto

import (
	"time"

	"deskhub/pkg/utils"
)

// FormatTime renders a nullable timestamp as RFC 3339 or null.
func FormatTime(t *time.Time) *string {
	return utils.FormatNullableTime(t)
}
