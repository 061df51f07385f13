package download

import (
	"path/filepath"
	"strconv"

	"github.com/alessio/shellescape"
	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-settings/internal/model"
)

// Executable is the yt-dlp binary name used in rendered command lines
const Executable = "yt-dlp"

// Format selectors
const (
	audioOnlySelector = "bestaudio/best"
	uploaderSubdir    = "%(uploader)s"
)

// Options holds the yt-dlp parameters derived from preferences
type Options struct {
	Directory   string
	Template    string
	Subdir      bool
	Quality     model.VideoQuality
	Container   model.VideoFormat
	AudioOnly   bool
	AudioFormat model.AudioFormat
	Thumbnail   bool
	Playlist    bool
	Fragments   int
	Verbose     bool
}

// FromSettings reads the current preferences. Audio-only downloads go to
// the audio directory.
func FromSettings(s SettingsReader) Options {
	o := Options{
		Directory:   s.VideoDirectory(),
		Template:    s.Template(),
		Subdir:      s.Subdirectory(),
		Quality:     s.VideoQuality(),
		Container:   s.VideoFormat(),
		AudioOnly:   s.ExtractAudio(),
		AudioFormat: s.AudioFormat(),
		Thumbnail:   s.Thumbnail(),
		Playlist:    s.Playlist(),
		Fragments:   model.ClampFragments(s.ConcurrentFragments()),
		Verbose:     s.Debug(),
	}
	if o.AudioOnly {
		o.Directory = s.AudioDirectory()
	}
	return o
}

// OutputTemplate returns the -o value: directory, optional uploader folder and file template
func (o Options) OutputTemplate() string {
	parts := []string{o.Directory}
	if o.Subdir {
		parts = append(parts, uploaderSubdir)
	}
	parts = append(parts, o.Template)
	return filepath.Join(parts...)
}

// FormatSelector returns the -f value
func (o Options) FormatSelector() string {
	if o.AudioOnly {
		return audioOnlySelector
	}
	return o.Quality.FormatSelector()
}

// Args returns the yt-dlp arguments for downloading url
func (o Options) Args(url string) []string {
	args := []string{"-f", o.FormatSelector()}

	if o.AudioOnly {
		args = append(args, "-x")
		if o.AudioFormat.Converts() {
			args = append(args, "--audio-format", o.AudioFormat.Codec())
		}
	} else if c := o.Container.Container(); c != "" {
		args = append(args, "--merge-output-format", c)
	}

	if o.Thumbnail {
		args = append(args, "--embed-thumbnail")
	}
	if o.Playlist {
		args = append(args, "--yes-playlist")
	} else {
		args = append(args, "--no-playlist")
	}
	if o.Fragments > 1 {
		args = append(args, "--concurrent-fragments", strconv.Itoa(o.Fragments))
	}
	if o.Verbose {
		args = append(args, "--verbose")
	}

	args = append(args, "-o", o.OutputTemplate())
	if url != "" {
		args = append(args, url)
	}
	return args
}

// CommandLine renders the full invocation as a shell-escaped string
func (o Options) CommandLine(url string) string {
	return shellescape.QuoteCommand(append([]string{Executable}, o.Args(url)...))
}

// Command configures a go-ytdlp command with the same parameters as Args
func (o Options) Command() *ytdlp.Command {
	cmd := ytdlp.New().
		Format(o.FormatSelector()).
		Output(o.OutputTemplate())

	if o.AudioOnly {
		cmd = cmd.ExtractAudio()
		if o.AudioFormat.Converts() {
			cmd = cmd.AudioFormat(o.AudioFormat.Codec())
		}
	} else if c := o.Container.Container(); c != "" {
		cmd = cmd.MergeOutputFormat(c)
	}

	if o.Thumbnail {
		cmd = cmd.EmbedThumbnail()
	}
	if o.Playlist {
		cmd = cmd.YesPlaylist()
	} else {
		cmd = cmd.NoPlaylist()
	}
	if o.Fragments > 1 {
		cmd = cmd.ConcurrentFragments(o.Fragments)
	}
	if o.Verbose {
		cmd = cmd.Verbose()
	}
	return cmd
}
