package dom

// Every site-specific CSS selector lives in this file. LinkedIn reshuffles
// its markup regularly; when that happens this is the only file to touch.
// Each list is ordered most-specific first and scanned until one matches.

// Search results.
var (
	ResultAnchors = []string{
		`ul[role="list"] li .t-16 a`,
		`li.reusable-search__result-container .t-16 a`,
		`a[href*="/in/"].app-aware-link`,
		`a[href^="https://www.linkedin.com/in/"]`,
	}

	NextPageButton = []string{
		`button[aria-label="Next"]`,
		`button[aria-label*="Next"]`,
		`.artdeco-pagination__button--next`,
	}
)

// Profile top card.
var (
	ProfileName = []string{
		`h1.text-heading-xlarge`,
		`.pv-text-details__left-panel h1`,
		`h1`,
	}

	ProfileTitle = []string{
		`.text-body-medium.break-words`,
		`.pv-text-details__left-panel .text-body-medium`,
	}

	ProfileLocation = []string{
		`.text-body-small.inline.t-black--light.break-words`,
		`.pv-text-details__left-panel .text-body-small`,
	}

	ProfilePicture = []string{
		`img.pv-top-card-profile-picture__image--show`,
		`img.evi-image`,
		`img[alt*="profile"]`,
	}

	VerifiedBadge = []string{
		`svg[data-test-icon="verified-small"]`,
		`.text-view-model__verified-icon`,
	}

	PremiumBadge = []string{
		`svg[data-test-icon*="premium"]`,
		`.text-view-model__linkedin-bug-premium`,
	}

	ConnectionDegree = []string{
		`.dist-value`,
		`span.distance-badge .visually-hidden`,
	}

	FollowerCount = []string{
		`.pv-top-card--list-bullet li span`,
		`p.pvs-header__optional-link span`,
	}
)

// Contact-info overlay.
var (
	ContactButton = []string{
		`#top-card-text-details-contact-info`,
		`a[href*="contact-info"]`,
		`a.link-without-visited-state`,
	}

	ContactModal = []string{
		`div[role="dialog"]`,
		`.artdeco-modal`,
		`.pv-contact-info`,
	}

	ModalDismiss = []string{
		`button[aria-label*="Dismiss"]`,
		`button[aria-label*="Close"]`,
		`.artdeco-modal__dismiss`,
	}

	ContactEmail = []string{
		`a[href*="mailto:"]`,
		`section div a[href*="mailto"]`,
	}

	ContactPhone = []string{
		`a[href*="tel:"]`,
		`section ul li span.t-14`,
		`section div ul li span`,
	}

	ContactWebsite = []string{
		`section ul li a[href^="http"]`,
		`section div a[href^="http"]`,
		`a[href^="http"]`,
	}
)

// PDF export menu.
var (
	MoreActionsButton = []string{
		`button[aria-label*="More actions"]`,
		`button[id*="profile-overflow-action"]`,
	}

	MenuItems = []string{
		`div[role="menuitem"]`,
		`button[role="menuitem"]`,
		`.artdeco-dropdown__item`,
	}
)

// Activity feeds.
var (
	PostContent = []string{
		`.update-components-text.relative.update-components-update-v2__commentary span[dir="ltr"]`,
		`.feed-shared-update-v2__description .update-components-text span[dir="ltr"]`,
		`.update-components-text span[dir="ltr"]`,
	}

	CommentContent = []string{
		`.comments-comment-item__main-content .update-components-text span[dir="ltr"]`,
		`.comments-comment-entity__content .update-components-text span[dir="ltr"]`,
		`.comments-comment-item__main-content`,
	}
)

// Logged-in marker: present only for authenticated sessions.
var FeedIdentity = []string{
	`.feed-identity-module`,
	`div.global-nav__me`,
	`img.global-nav__me-photo`,
}
