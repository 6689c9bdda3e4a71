package crossboard

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successText = color.New(color.FgGreen).SprintFunc()
	warningText = color.New(color.FgYellow).SprintFunc()
	failureText = color.New(color.FgRed, color.Bold).SprintFunc()
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successText(fmt.Sprintf(format, args...)))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warningText(fmt.Sprintf(format, args...)))
}

func printFailure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, failureText(fmt.Sprintf(format, args...)))
}
