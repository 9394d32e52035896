package constants

// DateStampLayout renders as e.g. "August 31, 2026".
const DateStampLayout = "January 02, 2006"
