package api

// NewClientWithHTTP exposes newClientWithHTTP to the external test package.
var NewClientWithHTTP = newClientWithHTTP
