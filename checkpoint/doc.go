// Package checkpoint persists pager anchors so an interrupted walk can be resumed.
package checkpoint
