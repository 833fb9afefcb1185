package chrome

import "html/template"

var headerTemplate = template.Must(template.New("header").Parse(`
<header class="site-header">
  <div class="site-header__inner">
    <div class="brand">
      <a href="./index.html" aria-label="Go to home page">
        <img class="brand__logo" src="./{{.LogoPath}}" alt="{{.StoreName}} logo" />
      </a>
    </div>

    <p class="brand__title">{{.StoreName}}</p>

    <a
      class="menu-button"
      role="button"
      href="{{.ToggleHref}}"
      aria-label="{{if .MenuOpen}}Close menu{{else}}Open menu{{end}}"
      aria-expanded="{{if .MenuOpen}}true{{else}}false{{end}}"
      aria-controls="menuPanel"
    >
      <span class="burger" aria-hidden="true">
        <span></span><span></span><span></span>
      </span>
    </a>
  </div>

  <div class="menu-panel{{if .MenuOpen}} is-open{{end}}" id="menuPanel">
    <nav class="menu-panel__box" aria-label="Site menu">
      {{.Links}}
    </nav>
  </div>
</header>
`))

var footerTemplate = template.Must(template.New("footer").Parse(`
<footer class="site-footer">
  <div class="site-footer__inner">
    <div class="footer-hours" aria-label="Store hours">
      <p class="footer-hours__line">Hours:</p>
      <p class="footer-hours__line">Monday - Friday: 8 am - 5 pm</p>
      <p class="footer-hours__line">Saturday: 10 am - 6 pm</p>
      <p class="footer-hours__line">Sunday: 11 am - 5 pm</p>
    </div>

    <div class="footer-subscribe">
      <form id="subscribeForm" class="subscribe__form" method="post" action="/subscribe" novalidate{{if .Subscribed}} hidden{{end}}>
        <input type="hidden" name="page" value="{{.Page}}" />
        <input
          id="subscribeEmail"
          class="subscribe__input"
          type="email"
          name="email"
          placeholder="Email"
          autocomplete="email"{{if .Refocus}}
          autofocus{{end}}
        />
        <button id="subscribeBtn" class="subscribe__btn" type="submit">
          Subscribe
        </button>
      </form>

      <p id="subscribeThanks" class="subscribe__thanks"{{if not .Subscribed}} hidden{{end}}>
        Thank you for subscribing
      </p>
    </div>

    <div class="socials" aria-label="Social media links">
      <a class="social-btn" href="https://www.facebook.com" target="_blank" rel="noreferrer">
        <span class="social-badge">f</span>
        <span>Facebook</span>
      </a>

      <a class="social-btn" href="https://x.com" target="_blank" rel="noreferrer">
        <span class="social-badge">x</span>
        <span>X</span>
      </a>

      <a class="social-btn" href="https://www.instagram.com" target="_blank" rel="noreferrer">
        <span class="social-badge">i</span>
        <span>Instagram</span>
      </a>
    </div>
  </div>
</footer>
`))
