package pages

import (
	"bytes"
	"html/template"
)

func execute(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} | {{.StoreName}}</title>
<link rel="stylesheet" href="./style.css">
</head>
<body>
<div id="siteHeader">{{.Header}}</div>
<main class="page">
{{.Body}}
</main>
<div id="siteFooter">{{.Footer}}</div>
<script>
(function () {
  var button = document.querySelector(".menu-button");
  var panel = document.getElementById("menuPanel");
  if (!button || !panel) return;
  function setOpen(open) {
    panel.classList.toggle("is-open", open);
    button.setAttribute("aria-expanded", open ? "true" : "false");
    button.setAttribute("aria-label", open ? "Close menu" : "Open menu");
  }
  button.addEventListener("click", function (e) {
    e.preventDefault();
    setOpen(!panel.classList.contains("is-open"));
  });
  document.addEventListener("click", function (e) {
    if (!panel.classList.contains("is-open")) return;
    if (panel.contains(e.target) || button.contains(e.target)) return;
    setOpen(false);
  });
  document.addEventListener("keydown", function (e) {
    if (e.key === "Escape") setOpen(false);
  });
  window.addEventListener("resize", function () { setOpen(false); });
})();
</script>
{{- if .LiveStatus}}
<script>
(function () {
  var msg = document.getElementById("cartMessage");
  if (!msg || !window.WebSocket) return;
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(scheme + location.host + "/ws/cart-status");
  ws.onmessage = function (e) {
    try { msg.textContent = JSON.parse(e.data).text; } catch (err) {}
  };
})();
</script>
{{- end}}
</body>
</html>
`))

var markdownTemplate = template.Must(template.New("markdown").Parse(`<section class="prose">
{{.}}
</section>
`))

var productsTemplate = template.Must(template.New("products").Parse(`<section class="products">
{{- if .Intro}}
<div class="prose">{{.Intro}}</div>
{{- end}}
<div class="product-grid">
{{- range .Cards}}
<article class="product-card" data-sku="{{.SKU}}" data-name="{{.Name}}" data-price="{{.Amount}}">
<h2 class="product-card__name">{{.Name}}</h2>
<p class="product-card__desc">{{.Desc}}</p>
<p class="product-card__price">{{.Price}}</p>
<form method="post" action="/cart/add">
<input type="hidden" name="sku" value="{{.SKU}}">
<button class="btn add-to-cart" type="submit"{{if .Added}} disabled{{end}}>{{if .Added}}Item added to the cart{{else}}Add to Cart{{end}}</button>
</form>
</article>
{{- else}}
<p class="products__empty">No products are available right now.</p>
{{- end}}
</div>
</section>
`))

var cartTemplate = template.Must(template.New("cart").Parse(`<section class="cart">
<h1>Your Cart</h1>
<p id="cartMessage" class="cart__message" role="status">{{.View.Message}}</p>
<p id="cartEmpty" class="cart__empty"{{if not .View.Empty}} hidden{{end}}>Your cart is empty.</p>
<div id="cartRows" class="cart__rows">
{{- range .View.Rows}}
<div class="cart__row">
<div class="cart__item">
<p class="cart__item-name">{{.Name}}</p>
<p class="cart__item-desc">{{.Desc}}</p>
</div>
<p class="cart__price">{{.Price}}</p>
<form method="post" action="/cart/remove">
<input type="hidden" name="index" value="{{.Index}}">
<button class="btn btn--ghost cart__remove" type="submit" data-index="{{.Index}}">Remove</button>
</form>
</div>
{{- end}}
</div>
<p class="cart__total">Total: <span id="cartTotal">{{.View.Total}}</span></p>
<div class="cart__actions">
<form method="post" action="/cart/clear">
<button id="clearCartBtn" class="btn btn--ghost" type="submit">Clear Cart</button>
</form>
<form method="post" action="/cart/checkout">
<button id="checkoutBtn" class="btn" type="submit">Checkout</button>
</form>
</div>
</section>
`))

var contactTemplate = template.Must(template.New("contact").Parse(`<section class="contact">
<div id="contactContent"{{if .Sent}} hidden{{end}}>
{{- if .Intro}}
<div class="prose">{{.Intro}}</div>
{{- end}}
<form id="contactForm" class="contact__form" method="post" action="/contact">
<label>Name <input type="text" name="name" autocomplete="name"></label>
<label>Email <input type="email" name="email" autocomplete="email"></label>
<label>Message <textarea name="message" rows="5"></textarea></label>
<button class="btn" type="submit">Send</button>
</form>
</div>
<div id="contactThankYou" class="contact__thanks"{{if not .Sent}} hidden{{end}}>
<h2>Thank you!</h2>
<p>We received your message and will be in touch soon.</p>
</div>
</section>
`))
