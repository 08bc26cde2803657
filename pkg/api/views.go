package api

import (
	"html/template"

	"portfolio-site/pkg/models"
)

const contactTemplateName = "contact"

// contactView is everything the contact section template reads
type contactView struct {
	State        models.SubmissionState
	Values       models.ContactFormData
	Invalid      map[string]bool
	ProjectTypes []models.ProjectType
	ContactEmail string
}

func newContactView(state models.SubmissionState, values models.ContactFormData, invalid []string, contactEmail string) contactView {
	marked := make(map[string]bool, len(invalid))
	for _, field := range invalid {
		marked[field] = true
	}
	return contactView{
		State:        state,
		Values:       values,
		Invalid:      marked,
		ProjectTypes: models.ProjectTypes,
		ContactEmail: contactEmail,
	}
}

var contactTemplate = template.Must(template.New(contactTemplateName).Parse(`<section id="contact" data-state="{{.State}}">
  <h2>Let's Chat!</h2>
  <p>Got a project idea? I'd love to hear about it. Drop me a message and I'll get back to you within 24 hours.</p>
{{- if .ContactEmail}}
  <p><a href="mailto:{{.ContactEmail}}">{{.ContactEmail}}</a></p>
{{- end}}
{{- if .State.Succeeded}}
  <div class="contact-success" role="status">
    <h3>Thanks so much!</h3>
    <p>I've received your message and I'll get back to you within 24 hours. Looking forward to chatting!</p>
    <form method="post" action="/contact/reset">
      <button type="submit">Send Another Message</button>
    </form>
  </div>
{{- else}}
  <form method="post" action="/contact">
    <label for="name">Your Name</label>
    <input type="text" id="name" name="name" required value="{{.Values.Name}}"{{if index .Invalid "name"}} aria-invalid="true"{{end}}>
    <label for="email">Your Email</label>
    <input type="email" id="email" name="email" required value="{{.Values.Email}}"{{if index .Invalid "email"}} aria-invalid="true"{{end}}>
    <label for="projectType">Project Type</label>
    <select id="projectType" name="projectType">
{{- range .ProjectTypes}}
      <option value="{{.Value}}"{{if eq .Value $.Values.ProjectType}} selected{{end}}>{{.Label}}</option>
{{- end}}
    </select>
    <label for="message">Your Message</label>
    <textarea id="message" name="message" rows="5" required{{if index .Invalid "message"}} aria-invalid="true"{{end}}>{{.Values.Message}}</textarea>
{{- if .State.Failed}}
    <div class="contact-error" role="alert">{{.State.Message}}</div>
{{- end}}
    <button type="submit"{{if .State.Submitting}} disabled{{end}}>{{if .State.Submitting}}Sending...{{else}}Send Message{{end}}</button>
  </form>
{{- end}}
</section>
`))
