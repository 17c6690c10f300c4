package handlers

// Common constants shared across all handler files
const fallbackPhotoURL = "https://upload.wikimedia.org/wikipedia/commons/8/89/Portrait_Placeholder.png"
