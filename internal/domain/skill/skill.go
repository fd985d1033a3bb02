package skill

import "strings"

// Descriptor is how a skill badge is drawn.
type Descriptor struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Default is returned for any skill not listed in the table.
var Default = Descriptor{Icon: "code", Color: "#6b7280"}

var descriptors = map[string]Descriptor{
	"html":        {Icon: "html5", Color: "#e34f26"},
	"css":         {Icon: "css3", Color: "#1572b6"},
	"javascript":  {Icon: "javascript", Color: "#f7df1e"},
	"typescript":  {Icon: "typescript", Color: "#3178c6"},
	"react":       {Icon: "react", Color: "#61dafb"},
	"next.js":     {Icon: "nextdotjs", Color: "#000000"},
	"vue.js":      {Icon: "vuedotjs", Color: "#4fc08d"},
	"angular":     {Icon: "angular", Color: "#dd0031"},
	"tailwind":    {Icon: "tailwindcss", Color: "#06b6d4"},
	"tailwindcss": {Icon: "tailwindcss", Color: "#06b6d4"},
	"node.js":     {Icon: "nodedotjs", Color: "#339933"},
	"express":     {Icon: "express", Color: "#000000"},
	"go":          {Icon: "go", Color: "#00add8"},
	"golang":      {Icon: "go", Color: "#00add8"},
	"python":      {Icon: "python", Color: "#3776ab"},
	"django":      {Icon: "django", Color: "#092e20"},
	"java":        {Icon: "java", Color: "#007396"},
	"php":         {Icon: "php", Color: "#777bb4"},
	"laravel":     {Icon: "laravel", Color: "#ff2d20"},
	"postgresql":  {Icon: "postgresql", Color: "#4169e1"},
	"mysql":       {Icon: "mysql", Color: "#4479a1"},
	"mongodb":     {Icon: "mongodb", Color: "#47a248"},
	"redis":       {Icon: "redis", Color: "#dc382d"},
	"graphql":     {Icon: "graphql", Color: "#e10098"},
	"git":         {Icon: "git", Color: "#f05032"},
	"github":      {Icon: "github", Color: "#181717"},
	"docker":      {Icon: "docker", Color: "#2496ed"},
	"kubernetes":  {Icon: "kubernetes", Color: "#326ce5"},
	"aws":         {Icon: "amazonaws", Color: "#ff9900"},
	"figma":       {Icon: "figma", Color: "#f24e1e"},
	"vs code":     {Icon: "visualstudiocode", Color: "#007acc"},
	"linux":       {Icon: "linux", Color: "#fcc624"},
}

// Lookup is case-insensitive and ignores surrounding whitespace.
func Lookup(name string) Descriptor {
	if d, ok := descriptors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return d
	}
	return Default
}

type Badge struct {
	Name string `json:"name"`
	Descriptor
}

type Category struct {
	Title  string  `json:"title"`
	Skills []Badge `json:"skills"`
}

const (
	TitleFrontend = "Frontend Development"
	TitleBackend  = "Backend Development"
	TitleTools    = "Tools & Platforms"
)

// Categorize builds the three skill columns in display order.
func Categorize(frontend, backend, tools []string) []Category {
	return []Category{
		{Title: TitleFrontend, Skills: badges(frontend)},
		{Title: TitleBackend, Skills: badges(backend)},
		{Title: TitleTools, Skills: badges(tools)},
	}
}

func badges(names []string) []Badge {
	out := make([]Badge, 0, len(names))
	for _, n := range names {
		out = append(out, Badge{Name: n, Descriptor: Lookup(n)})
	}
	return out
}
