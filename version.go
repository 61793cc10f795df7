package dtd

// Version is the version of this library
const Version = "v0.1.0"
