package icons

import "github.com/Ning0612/lstree/internal/domain"

// DefaultTable returns the built-in icon set. Symlinks have no type icon so
// that a link is decorated like the file it points at.
func DefaultTable() *Table {
	return &Table{
		ByType: map[domain.FileType]Icon{
			domain.FileTypeDirectory:   {Code: 33, Glyph: ""},
			domain.FileTypeNamedPipe:   {Code: 220, Glyph: ""},
			domain.FileTypeSocket:      {Code: 170, Glyph: ""},
			domain.FileTypeCharDevice:  {Code: 208, Glyph: ""},
			domain.FileTypeBlockDevice: {Code: 208, Glyph: ""},
		},
		ByExt:      defaultExtIcons(),
		ByFileName: defaultFileNameIcons(),
		Default:    Icon{Code: 66, Glyph: ""},
	}
}

func defaultExtIcons() map[string]Icon {
	return map[string]Icon{
		"7z":    {Code: 229, Glyph: ""},
		"bash":  {Code: 113, Glyph: ""},
		"bmp":   {Code: 140, Glyph: ""},
		"c":     {Code: 75, Glyph: ""},
		"cc":    {Code: 204, Glyph: ""},
		"conf":  {Code: 66, Glyph: ""},
		"cpp":   {Code: 204, Glyph: ""},
		"cs":    {Code: 58, Glyph: ""},
		"css":   {Code: 39, Glyph: ""},
		"csv":   {Code: 113, Glyph: ""},
		"dart":  {Code: 25, Glyph: ""},
		"diff":  {Code: 59, Glyph: ""},
		"ex":    {Code: 140, Glyph: ""},
		"exs":   {Code: 140, Glyph: ""},
		"gif":   {Code: 140, Glyph: ""},
		"go":    {Code: 67, Glyph: ""},
		"gz":    {Code: 229, Glyph: ""},
		"h":     {Code: 140, Glyph: ""},
		"hpp":   {Code: 140, Glyph: ""},
		"hs":    {Code: 140, Glyph: ""},
		"html":  {Code: 196, Glyph: ""},
		"ico":   {Code: 185, Glyph: ""},
		"ini":   {Code: 66, Glyph: ""},
		"java":  {Code: 167, Glyph: ""},
		"jpeg":  {Code: 140, Glyph: ""},
		"jpg":   {Code: 140, Glyph: ""},
		"js":    {Code: 185, Glyph: ""},
		"json":  {Code: 185, Glyph: ""},
		"jsx":   {Code: 45, Glyph: ""},
		"kt":    {Code: 99, Glyph: ""},
		"lock":  {Code: 250, Glyph: ""},
		"log":   {Code: 255, Glyph: ""},
		"lua":   {Code: 74, Glyph: ""},
		"md":    {Code: 67, Glyph: ""},
		"mod":   {Code: 67, Glyph: ""},
		"pdf":   {Code: 124, Glyph: ""},
		"php":   {Code: 140, Glyph: ""},
		"png":   {Code: 140, Glyph: ""},
		"py":    {Code: 61, Glyph: ""},
		"rb":    {Code: 52, Glyph: ""},
		"rs":    {Code: 216, Glyph: ""},
		"scss":  {Code: 204, Glyph: ""},
		"sh":    {Code: 59, Glyph: ""},
		"sql":   {Code: 188, Glyph: ""},
		"sum":   {Code: 67, Glyph: ""},
		"svg":   {Code: 214, Glyph: "ﰟ"},
		"swift": {Code: 208, Glyph: ""},
		"tar":   {Code: 229, Glyph: ""},
		"toml":  {Code: 66, Glyph: ""},
		"ts":    {Code: 67, Glyph: ""},
		"tsx":   {Code: 67, Glyph: ""},
		"txt":   {Code: 113, Glyph: ""},
		"vim":   {Code: 29, Glyph: ""},
		"xml":   {Code: 173, Glyph: ""},
		"yaml":  {Code: 66, Glyph: ""},
		"yml":   {Code: 66, Glyph: ""},
		"zip":   {Code: 229, Glyph: ""},
		"zsh":   {Code: 113, Glyph: ""},
	}
}

func defaultFileNameIcons() map[string]Icon {
	return map[string]Icon{
		".bashrc":        {Code: 113, Glyph: ""},
		".dockerignore":  {Code: 68, Glyph: ""},
		".editorconfig":  {Code: 66, Glyph: ""},
		".gitattributes": {Code: 202, Glyph: ""},
		".gitconfig":     {Code: 202, Glyph: ""},
		".gitignore":     {Code: 202, Glyph: ""},
		".gitmodules":    {Code: 202, Glyph: ""},
		".zshrc":         {Code: 113, Glyph: ""},
		"CHANGELOG":      {Code: 173, Glyph: ""},
		"Dockerfile":     {Code: 68, Glyph: ""},
		"LICENSE":        {Code: 185, Glyph: ""},
		"Makefile":       {Code: 66, Glyph: ""},
		"README":         {Code: 67, Glyph: ""},
		"Vagrantfile":    {Code: 27, Glyph: ""},
		"go.mod":         {Code: 67, Glyph: ""},
		"go.sum":         {Code: 67, Glyph: ""},
		"justfile":       {Code: 66, Glyph: ""},
	}
}
