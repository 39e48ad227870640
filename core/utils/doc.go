// Package utils provides small type conversion helpers.
//
// ToString coerces arbitrary values into their textual representation using
// explicit type switching, falling back to fmt formatting. It backs the
// storage.ValueBody upload variant, which accepts any value and stores its
// text form.
package utils
