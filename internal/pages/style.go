package pages

// Stylesheet is served as /style.css and written next to generated pages.
const Stylesheet = `:root {
  --ink: #2b2118;
  --paper: #fbf7f0;
  --accent: #8a5a2b;
  --muted: #7a6a5a;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: Georgia, "Times New Roman", serif; color: var(--ink); background: var(--paper); }
a { color: var(--accent); }
[hidden] { display: none !important; }

.site-header { background: var(--ink); color: var(--paper); position: relative; }
.site-header__inner { display: flex; align-items: center; gap: 1rem; padding: 0.75rem 1.5rem; }
.brand__logo { height: 48px; }
.brand__title { flex: 1; font-size: 1.4rem; margin: 0; }
.menu-button { display: inline-flex; padding: 0.5rem; cursor: pointer; }
.burger { display: grid; gap: 4px; }
.burger span { display: block; width: 24px; height: 3px; background: var(--paper); }
.menu-panel { display: none; position: absolute; right: 1rem; top: 100%; z-index: 10; }
.menu-panel.is-open { display: block; }
.menu-panel__box { display: grid; background: #fff; border: 1px solid #ddd; min-width: 12rem; }
.menu-link { padding: 0.6rem 1rem; text-decoration: none; color: var(--ink); }
.menu-link.is-active { font-weight: bold; background: #f1e6d6; }

.page { max-width: 960px; margin: 0 auto; padding: 2rem 1.5rem; min-height: 60vh; }
.btn { background: var(--accent); color: #fff; border: 0; padding: 0.5rem 1rem; cursor: pointer; }
.btn[disabled] { opacity: 0.6; cursor: default; }
.btn--ghost { background: transparent; color: var(--accent); border: 1px solid var(--accent); }

.product-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 1.5rem; }
.product-card { background: #fff; padding: 1rem; border: 1px solid #e6dccd; }
.product-card__desc { color: var(--muted); }

.cart__row { display: flex; align-items: center; gap: 1rem; border-bottom: 1px solid #e6dccd; padding: 0.75rem 0; }
.cart__item { flex: 1; }
.cart__item-desc { color: var(--muted); margin: 0; }
.cart__message { min-height: 1.5em; font-style: italic; }
.cart__total { font-size: 1.2rem; }
.cart__actions { display: flex; gap: 1rem; }

.contact__form { display: grid; gap: 0.75rem; max-width: 32rem; }
.contact__form input, .contact__form textarea { width: 100%; padding: 0.4rem; }

.site-footer { background: var(--ink); color: var(--paper); }
.site-footer__inner { display: flex; flex-wrap: wrap; justify-content: space-between; gap: 1.5rem; padding: 1.5rem; }
.footer-hours__line { margin: 0.2rem 0; }
.subscribe__form { display: flex; gap: 0.5rem; }
.subscribe__input { padding: 0.4rem; }
.subscribe__btn { background: var(--accent); color: #fff; border: 0; padding: 0.4rem 0.9rem; }
.socials { display: flex; gap: 0.75rem; }
.social-btn { display: inline-flex; gap: 0.4rem; align-items: center; color: var(--paper); text-decoration: none; }
.social-badge { display: inline-grid; place-items: center; width: 1.5rem; height: 1.5rem; border-radius: 50%; background: var(--accent); }
`
