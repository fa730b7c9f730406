// Package nion maps content from nionswift projects and data items onto
// NXem concepts.
package nion
