// Package domain defines the core business entities of the blog API
// and the validation rules they enforce.
package domain
