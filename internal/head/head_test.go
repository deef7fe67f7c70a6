package head

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const headYAML = `
- tag: link
  attrs:
    rel: icon
    href: /favicon.ico
- [meta, {name: theme-color, content: "#3c8772"}]
- tag: script
  attrs: {async: ""}
  content: "window.dataLayer = window.dataLayer || [];"
`

func TestTags_UnmarshalYAML(t *testing.T) {
	var tags Tags
	require.NoError(t, yaml.Unmarshal([]byte(headYAML), &tags))
	require.Len(t, tags, 3)

	assert.Equal(t, Tag{Name: "link", Attrs: []Attr{{"rel", "icon"}, {"href", "/favicon.ico"}}}, tags[0])
	assert.Equal(t, "meta", tags[1].Name)
	color, ok := tags[1].Attr("content")
	require.True(t, ok)
	assert.Equal(t, "#3c8772", color)
	assert.Equal(t, "window.dataLayer = window.dataLayer || [];", tags[2].Content)
}

func TestTag_UnmarshalYAMLErrors(t *testing.T) {
	var tags Tags
	err := yaml.Unmarshal([]byte("- tag: meta\n  weird: 1\n"), &tags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown head field "weird"`)

	err = yaml.Unmarshal([]byte("- [meta, notamap]\n"), &tags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a mapping")
}

func TestTags_YAMLRoundTripKeepsOrder(t *testing.T) {
	var tags Tags
	require.NoError(t, yaml.Unmarshal([]byte(headYAML), &tags))
	out, err := yaml.Marshal(tags)
	require.NoError(t, err)

	var back Tags
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, tags, back)
}

func TestTag_JSON(t *testing.T) {
	tag := Tag{Name: "meta", Attrs: []Attr{{"property", "og:title"}, {"content", "Docs"}}}
	b, err := json.Marshal(tag)
	require.NoError(t, err)
	assert.Equal(t, `["meta",{"property":"og:title","content":"Docs"}]`, string(b))

	var back Tag
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, tag, back)

	var obj Tag
	require.NoError(t, json.Unmarshal([]byte(`{"tag":"link","attrs":{"rel":"preconnect","href":"https://fonts.example.com","crossorigin":true}}`), &obj))
	assert.Equal(t, []Attr{{"rel", "preconnect"}, {"href", "https://fonts.example.com"}, {"crossorigin", "true"}}, obj.Attrs)
}

func TestTag_JSONAttributeValues(t *testing.T) {
	var tag Tag
	require.NoError(t, json.Unmarshal([]byte(`["meta",{"name":"x","max-age":1000000,"ratio":0.75,"flag":false,"empty":null}]`), &tag))
	assert.Equal(t, []Attr{{"name", "x"}, {"max-age", "1000000"}, {"ratio", "0.75"}, {"flag", "false"}, {"empty", ""}}, tag.Attrs)

	err := json.Unmarshal([]byte(`["meta",{"content":{"nested":1}}]`), &tag)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `head attribute "content"`)

	err = json.Unmarshal([]byte(`{"tag":"meta","attrs":{"content":[1,2]}}`), &tag)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string, number or boolean")

	var tags Tags
	err = yaml.Unmarshal([]byte("- [meta, {content: {nested: 1}}]\n"), &tags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `head attribute "content" must be a scalar`)
}

func TestTags_Validate(t *testing.T) {
	require.NoError(t, Tags{{Name: "META", Attrs: []Attr{{"charset", "utf-8"}}}, {Name: "title", Content: "Docs"}}.Validate())

	err := Tags{
		{Name: "div"},
		{Name: "link", Content: "x"},
		{Name: ""},
		{Name: "meta", Attrs: []Attr{{"bad name", "x"}}},
	}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "head[0]: <div> is not allowed in head")
	assert.Contains(t, err.Error(), "head[1]: <link> cannot have content")
	assert.Contains(t, err.Error(), "head[2]: tag name is empty")
	assert.Contains(t, err.Error(), `head[3]: invalid attribute name "bad name"`)
}

func TestTags_Render(t *testing.T) {
	tags := Tags{
		{Name: "link", Attrs: []Attr{{"rel", "icon"}, {"href", "/favicon.ico"}}},
		{Name: "title", Content: "A & B"},
		{Name: "script", Content: "if (a < b) {}"},
	}
	out, err := tags.Render()
	require.NoError(t, err)
	assert.Equal(t, "<link rel=\"icon\" href=\"/favicon.ico\"/>\n"+
		"<title>A &amp; B</title>\n"+
		"<script>if (a < b) {}</script>\n", out)
}
