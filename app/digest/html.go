package digest

import (
	"bytes"
	"fmt"
)

// themeScript persists the reader's light/dark choice in localStorage and
// defaults to dark when nothing is saved yet.
const themeScript = `<script>
  const toggleBtn = document.getElementById('theme-toggle');
  const currentTheme = localStorage.getItem('theme');

  if (currentTheme) {
    document.documentElement.setAttribute('data-theme', currentTheme);
  } else {
    document.documentElement.setAttribute('data-theme', 'dark');
    localStorage.setItem('theme', 'dark');
  }

  toggleBtn.addEventListener('click', () => {
    let theme = document.documentElement.getAttribute('data-theme');
    if (theme === 'dark') {
      document.documentElement.setAttribute('data-theme', 'light');
      localStorage.setItem('theme', 'light');
    } else {
      document.documentElement.setAttribute('data-theme', 'dark');
      localStorage.setItem('theme', 'dark');
    }
  });
</script>`

const toggleButton = `<button id="theme-toggle" class="theme-toggle">
  <span class="icon-light" role="img" aria-label="Light Mode">&#9728;</span>
  <span class="icon-dark" role="img" aria-label="Dark Mode">&#9790;</span>
</button>`

const pageStyle = `<style>
  :root {
    --background: #f9fafb;
    --text: #1f2937;
    --card-bg: #ffffff;
    --border: #e5e7eb;
    --primary: #2563eb;
  }

  [data-theme='dark'] {
    --background: #111827;
    --text: #e5e7eb;
    --card-bg: #1f2937;
    --border: #374151;
    --primary: #60a5fa;
  }

  body {
    font-family: 'Inter', sans-serif;
    line-height: 1.6;
    margin: 0;
    padding: 0;
    background-color: var(--background);
    color: var(--text);
    transition: background-color 0.3s ease, color 0.3s ease;
  }
  .container {
    max-width: 900px;
    margin: 20px auto;
    padding: 20px;
    background-color: var(--background);
    border-radius: 8px;
    box-shadow: 0 4px 12px rgba(0,0,0,0.08);
  }
  @media (max-width: 768px) {
    .container {
      margin: 10px;
      padding: 15px;
      border-radius: 0;
      box-shadow: none;
    }
  }
  h1 {
    color: var(--primary);
    border-bottom: 2px solid var(--primary);
    padding-bottom: 15px;
    margin-bottom: 30px;
    font-size: 2.2em;
    font-weight: 700;
  }
  h2 {
    color: var(--primary);
    margin-top: 35px;
    border-bottom: 1px dashed var(--border);
    padding-bottom: 10px;
    font-size: 1.6em;
    font-weight: 600;
  }
  ul {
    list-style: none;
    padding: 0;
  }
  li {
    background-color: var(--card-bg);
    border: 1px solid var(--border);
    margin-bottom: 15px;
    padding: 20px;
    border-radius: 8px;
    box-shadow: 0 2px 8px rgba(0,0,0,0.05);
  }
  li:hover {
    box-shadow: 0 4px 16px rgba(0,0,0,0.1);
  }
  a {
    color: var(--primary);
    text-decoration: none;
    font-weight: 600;
  }
  a:hover {
    text-decoration: underline;
  }
  p {
    margin-top: 10px;
    color: var(--text);
  }
  .footer {
    text-align: center;
    margin-top: 50px;
    font-size: 0.85em;
    color: #777;
    padding-top: 20px;
    border-top: 1px solid var(--border);
  }
  .theme-toggle {
    position: fixed;
    top: 20px;
    right: 20px;
    background-color: var(--card-bg);
    color: var(--primary);
    border: 1px solid var(--border);
    border-radius: 50%;
    width: 40px;
    height: 40px;
    display: flex;
    align-items: center;
    justify-content: center;
    font-size: 1.5em;
    cursor: pointer;
    z-index: 1000;
  }
  .theme-toggle:hover {
    background-color: var(--primary);
    color: var(--card-bg);
  }
  [data-theme='light'] .icon-dark { display: none; }
  [data-theme='dark'] .icon-light { display: none; }
</style>`

// WritePageOpen writes the shared document head: doctype, viewport meta,
// embedded styling, and the theme toggle button. Every published page
// (digest and archive index) starts with this scaffold.
func WritePageOpen(buf *bytes.Buffer, title string) {
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	buf.WriteString("<meta charset='utf-8'>\n")
	buf.WriteString("<meta name='viewport' content='width=device-width, initial-scale=1.0'>\n")
	buf.WriteString(fmt.Sprintf("<title>%s</title>\n", title))
	buf.WriteString(`<link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;600;700&display=swap" rel="stylesheet">` + "\n")
	buf.WriteString(pageStyle)
	buf.WriteString("\n</head>\n<body>\n<div class=\"container\">\n")
	buf.WriteString(toggleButton)
	buf.WriteString("\n")
}

// WritePageClose writes the optional footer, the theme script, and the
// closing tags.
func WritePageClose(buf *bytes.Buffer, footer string) {
	if footer != "" {
		buf.WriteString(fmt.Sprintf("<div class='footer'>%s</div>\n", footer))
	}
	buf.WriteString("</div>\n")
	buf.WriteString(themeScript)
	buf.WriteString("\n</body>\n</html>")
}
