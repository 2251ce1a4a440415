// Package classnames splits and joins whitespace-separated class attribute values.
package classnames
