// Package menu contains the catalog: orderable items and their categories.
package menu
