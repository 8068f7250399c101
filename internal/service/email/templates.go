package email

import "html/template"

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<html>
  <body>
    <h2>Hi {{.Name}},</h2>
    <p>Your account is ready. Say "{{.Assistant}}" followed by a command
    and your assistant will take it from there.</p>
    <p>A few things to try:</p>
    <ul>
      <li>"{{.Assistant}}, what time is it?"</li>
      <li>"{{.Assistant}}, search for pasta recipes"</li>
      <li>"{{.Assistant}}, open YouTube"</li>
    </ul>
    <p>You can rename your assistant or change its avatar any time from
    the customization page.</p>
  </body>
</html>
`))
