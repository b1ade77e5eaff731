//go:build !release

package global

var MAJOR = 0
var MINOR = 1
var PATCH = 0

var Version = "development"

var UserAgent = "heapvis/development"

var Dev = true
