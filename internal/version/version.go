package version

// Version is the released tool version.
const Version = "0.2.0"
