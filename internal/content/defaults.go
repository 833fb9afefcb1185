package content

// defaultPages are the bodies used when the content directory does not
// provide a page.
var defaultPages = map[string]string{
	"index.html": `# Welcome to Book Haven

A neighborhood bookstore with hand-picked fiction, field guides and cookbooks.
Browse the [products](./products.html) or drop by the shop.
`,
	"community.html": `# Community

- **Story hour** every Saturday at 10 am for young readers.
- **Book club** meets the first Tuesday of each month.
- **Local authors** shelf featuring writers from our town.
`,
	"about.html": `# About Us

Book Haven opened its doors in a converted bakery and still smells faintly of
bread. We stock new and second-hand books and are happy to order anything we
do not carry.
`,
	"contact.html": `# Contact Us

Questions, special orders or event ideas: send us a note and we will get back
to you.
`,
}
