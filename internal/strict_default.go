//go:build !release

package internal

const defaultStrictMode = Strict
