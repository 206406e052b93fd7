//go:build release

package internal

const defaultStrictMode = Lenient
