// Package web serves the meme gallery to browsers.
//
// It fetches categories and labels from the meme backend, renders them as a
// gallery page, and forwards upload, delete and add-category actions back to
// the backend before refreshing the view.
package web
