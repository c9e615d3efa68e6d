// Package common provides logging utilities shared by the library and the CLI.
package common
