package md2site

import "fmt"

// pageTemplate is the standalone page shell. It references the
// companion styles.css and script.js written next to the HTML file.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
%s
    <div class="content">
%s    </div>
    <script src="script.js"></script>
</body>
</html>
`

// portableTemplate is a self-contained variant with the stylesheet
// inlined and no script, suitable for PDF rendering where relative
// asset references would not resolve.
const portableTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
%s
    </style>
</head>
<body>
%s
    <div class="content">
%s    </div>
</body>
</html>
`

// assemblePage wraps the TOC and body fragments in the page shell.
func assemblePage(title, tocHTML, bodyHTML string) string {
	return fmt.Sprintf(pageTemplate, title, tocHTML, bodyHTML)
}

// assemblePortablePage builds the self-contained variant used for PDF
// export.
func assemblePortablePage(title, css, tocHTML, bodyHTML string) string {
	return fmt.Sprintf(portableTemplate, title, css, tocHTML, bodyHTML)
}

// documentTitle resolves the page title: explicit override, else the
// first heading, else the fixed fallback.
func documentTitle(headings []Heading, override string) string {
	if override != "" {
		return override
	}
	if len(headings) > 0 {
		return headings[0].Text
	}
	return FallbackTitle
}
