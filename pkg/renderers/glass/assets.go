package glass

const baseStyles = `
.theme-header, .theme-nav, .theme-article, .theme-footer, .theme-card {
  background: var(--glass-bg);
  border: 1px solid var(--glass-border);
  border-radius: var(--radius);
  backdrop-filter: blur(var(--glass-blur)) saturate(160%);
  -webkit-backdrop-filter: blur(var(--glass-blur)) saturate(160%);
  color: var(--text);
}
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; }
a { color: var(--accent); }
`

const headerStyles = `
.theme-header { display: flex; align-items: center; justify-content: space-between; padding: .75rem 1.25rem; margin: 1rem; }
.theme-header__brand { display: inline-flex; align-items: center; text-decoration: none; color: inherit; }
.theme-header__logo { height: 32px; width: auto; }
.theme-header__title { font-weight: 600; font-size: 1.125rem; }
.theme-header__toggle { display: none; background: none; border: 0; color: inherit; cursor: pointer; }
@media (max-width: 720px) { .theme-header__toggle { display: inline-flex; } }
`

const navigationStyles = `
.theme-nav { margin: 0 1rem; padding: .5rem 1rem; }
.theme-nav__list { display: flex; flex-wrap: wrap; gap: .25rem; list-style: none; margin: 0; padding: 0; }
.theme-nav__link { display: block; padding: .4rem .8rem; border-radius: calc(var(--radius) / 2); text-decoration: none; color: inherit; }
.theme-nav__link.is-active { background: var(--glass-border); color: var(--accent); }
@media (max-width: 720px) { .theme-nav:not(.is-open) { display: none; } }
`

const articleStyles = `
.theme-article { margin: 1rem; padding: 1.5rem 2rem; }
.theme-article__title { margin-top: 0; }
`

const footerStyles = `
.theme-footer { margin: 1rem; padding: 1rem 1.25rem; font-size: .875rem; }
.theme-footer__content { display: flex; flex-wrap: wrap; justify-content: space-between; gap: 1rem; }
.theme-footer__nav { display: flex; gap: 1rem; }
.theme-footer__link { color: inherit; }
`

const cardStyles = `
.theme-card { padding: 1rem 1.25rem; margin: 1rem 0; }
.theme-card__title { margin: 0 0 .5rem; }
`

const tabsStyles = `
.theme-tabs__list { display: flex; gap: .25rem; border-bottom: 1px solid var(--glass-border); }
.theme-tabs__tab { background: none; border: 0; padding: .5rem 1rem; color: inherit; cursor: pointer; }
.theme-tabs__tab[aria-selected="true"] { color: var(--accent); border-bottom: 2px solid var(--accent); }
.theme-tabs__panel { padding: 1rem 0; }
`

const markdownStyles = `
.theme-markdown pre { overflow-x: auto; padding: 1rem; border-radius: calc(var(--radius) / 2); background: var(--glass-border); }
.theme-markdown table { border-collapse: collapse; }
.theme-markdown th, .theme-markdown td { border: 1px solid var(--glass-border); padding: .25rem .5rem; }
`

const imageStyles = `
.theme-image { margin: 1rem 0; }
.theme-image img { max-width: 100%; border-radius: var(--radius); }
.theme-image figcaption { font-size: .875rem; opacity: .75; }
`

const toggleScript = `
document.querySelectorAll('.theme-header__toggle').forEach(function (button) {
  button.addEventListener('click', function () {
    var open = button.getAttribute('aria-expanded') === 'true';
    button.setAttribute('aria-expanded', String(!open));
    document.querySelectorAll('.theme-nav').forEach(function (nav) { nav.classList.toggle('is-open', !open); });
  });
});
`

const tabsScript = `
document.querySelectorAll('[data-tabs]').forEach(function (root) {
  var tabs = root.querySelectorAll('[role="tab"]');
  tabs.forEach(function (tab) {
    tab.addEventListener('click', function () {
      tabs.forEach(function (other) {
        var selected = other === tab;
        other.setAttribute('aria-selected', String(selected));
        var panel = document.getElementById(other.getAttribute('aria-controls'));
        if (panel) { panel.hidden = !selected; }
      });
    });
  });
});
`
