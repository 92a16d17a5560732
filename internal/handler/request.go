package handler

import (
	"errors"
	"fmt"
	"io"

	"github.com/koungkub/fcm-api-tester/internal/client"
)

var ErrMissingToken = errors.New("missing FCM token")

// ParseArgs reads `<token> [title] [message]`. Extra arguments are ignored.
func ParseArgs(args []string) (client.NotificationRequest, error) {
	if len(args) < 1 {
		return client.NotificationRequest{}, ErrMissingToken
	}

	return client.NewNotificationRequest(args[0], args[1:]...), nil
}

func Usage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s <FCM_TOKEN> [title] [message]\n", program)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example:")
	fmt.Fprintf(w, "  %s 'your-fcm-token-here'\n", program)
	fmt.Fprintf(w, "  %s 'your-fcm-token-here' 'Custom Title' 'Custom Message'\n", program)
}
