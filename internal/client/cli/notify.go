package cli

import (
	"fmt"
	"io"
)

// ToastNotifier prints transient notifications to the terminal, standing in
// for the UI toast layer.
type ToastNotifier struct {
	w io.Writer
}

func NewToastNotifier(w io.Writer) *ToastNotifier {
	return &ToastNotifier{w: w}
}

func (n *ToastNotifier) Notify(message string) {
	fmt.Fprintf(n.w, "[notice] %s\n", message)
}

// LoginNavigator stands in for navigation to the login view: in a terminal
// client that is a prompt to log in again.
type LoginNavigator struct {
	w io.Writer
}

func NewLoginNavigator(w io.Writer) *LoginNavigator {
	return &LoginNavigator{w: w}
}

func (n *LoginNavigator) NavigateToLogin() {
	fmt.Fprintln(n.w, "returning to login, use the 'login' command to sign in again")
}
