package handling

import (
	"fmt"

	"github.com/MonkyMars/gecho"
)

// HandleError logs err with its context and returns it wrapped with msg
func HandleError(err error, msg string, logger *gecho.Logger) error {
	if err == nil {
		return nil
	}

	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	return fmt.Errorf("%s: %w", msg, err)
}
