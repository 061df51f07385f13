package download

// Package download translates stored preferences into yt-dlp invocation
// parameters (via github.com/lrstanley/go-ytdlp) for the download
// collaborator. It does not run yt-dlp.
