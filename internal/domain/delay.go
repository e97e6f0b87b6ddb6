package domain

import (
	"fmt"
	"time"
)

// DelayStyle identifies how a platform shell expresses a startup delay.
type DelayStyle int

// Delay styles.
const (
	DelayPOSIX   DelayStyle = iota // sleep N && ...
	DelayWindows                   // timeout /t N && ...
)

// DelayPrefix returns the shell fragment that waits for d before the
// following command runs. Windows timeout accepts whole seconds only.
func DelayPrefix(style DelayStyle, d time.Duration) string {
	secs := int(d / time.Second)
	switch style {
	case DelayWindows:
		return fmt.Sprintf("timeout /t %d && ", secs)
	default:
		return fmt.Sprintf("sleep %d && ", secs)
	}
}

// DelayedCommand returns command prefixed with the startup delay for style,
// followed by suffix. command is never quoted or escaped.
func DelayedCommand(style DelayStyle, command, suffix string) string {
	return DelayPrefix(style, StartupDelay) + command + suffix
}
